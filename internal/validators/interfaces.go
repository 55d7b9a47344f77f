// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sharing requests entering the cloud emulator,
// both seed files and update bodies.
//
// A Validator dispatches on the value's type. Passing field names restricts
// validation to those fields; no names means every field of the type.
package validators

import "context"

// Validator validates the provided value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
