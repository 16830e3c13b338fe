// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidBody is returned when the request body cannot be decoded
	// into the expected payload.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrUnsupportedContentType is returned for bodies that are neither
	// JSON nor url-encoded forms.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMissingImage is returned when a card upload has no "image" file.
	ErrMissingImage = errors.New("image file is required")

	// ErrUploadTooLarge is returned when a card upload exceeds the
	// configured size limit.
	ErrUploadTooLarge = errors.New("upload is too large")
)
