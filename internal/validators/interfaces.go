// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// implementations.
//
// Validation is limited to presence and simple range rules declared with
// `validate` struct tags on the models. Services receive a [Validator]
// through their validation wrappers, so the rules stay out of both the
// transport and the storage layers.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
