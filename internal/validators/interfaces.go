// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input of the fin-tracker client before it
// is sent: credentials, registration and the onboarding questionnaire.
//
// Every rule mirrors a constraint the finance API enforces. All errors wrap
// [ErrInvalidInput].
package validators

import "context"

// Validator validates a value of a supported type. fields narrows the check
// to the named fields or steps; every field is checked when it is empty.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
