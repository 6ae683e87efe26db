// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies against the input rules of the
// auth endpoints before any store or upload call is made.
//
// A Validator accepts one of the known request models and, optionally, the
// names of the fields to check. Without field names every rule of that model
// is applied in a fixed order.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
