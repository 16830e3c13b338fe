// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/gofiber/schema"
)

const (
	contentTypeJSON      = "application/json"
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"

	// maxUploadMemory is the part of a multipart body kept in memory;
	// the rest is spooled to temporary files.
	maxUploadMemory = 10 << 20

	// defaultMaxUploadSize caps a whole multipart body when no limit is
	// configured.
	defaultMaxUploadSize = 32 << 20
)

// formDecoder fills structs from form values using their "form" tags.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("form")
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeBody fills dst from a JSON or url-encoded form body. A missing
// Content-Type is treated as JSON.
func decodeBody(r *http.Request, dst any) error {
	mediaType := contentTypeJSON
	if header := r.Header.Get("Content-Type"); header != "" {
		parsed, _, err := mime.ParseMediaType(header)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case contentTypeJSON:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	case contentTypeForm:
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	return nil
}
