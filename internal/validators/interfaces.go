// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks users and properties received from clients
// before they reach the services.
//
// Each validator checks a named subset of fields, so that create and update
// can apply different rules to the same model. A nil error means the value
// is acceptable; every failure is one of the sentinels in errors.go.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
// Unknown field names yield ErrUnknownField, values of the wrong model type
// yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
