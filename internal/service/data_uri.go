package service

import (
	"encoding/base64"
	"errors"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrMalformedDataURI is returned by DecodeDataURI for input that is not a
// base64 data URI.
var ErrMalformedDataURI = errors.New("malformed data URI")

// EncodeDataURI renders data as "data:<mime>;base64,<payload>".
//
// declaredType is the type reported by the client. When it is empty or the
// generic "application/octet-stream", the type is detected from the content.
// Media type parameters are dropped.
func EncodeDataURI(declaredType string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil || mediaType == "application/octet-stream" {
		mediaType, _, _ = strings.Cut(mimetype.Detect(data).String(), ";")
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI is the inverse of EncodeDataURI.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}

	mediaType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrMalformedDataURI, err)
	}

	return mediaType, data, nil
}
