// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is wrapped by every field error below.
	ErrInvalidInput = errors.New("invalid input")
)

// credentials
var (
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrInvalidInput)
	ErrInvalidEmail     = fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	ErrEmptyUsername    = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrLongUsername     = fmt.Errorf("%w: username is too long", ErrInvalidInput)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", ErrInvalidInput)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, MinPasswordLength)
)

// onboarding questionnaire
var (
	ErrInvalidName          = fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, MaxNameLength)
	ErrInvalidAge           = fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, MinAge, MaxAge)
	ErrNegativeIncome       = fmt.Errorf("%w: monthly income cannot be negative", ErrInvalidInput)
	ErrNegativeExpenses     = fmt.Errorf("%w: monthly expenses cannot be negative", ErrInvalidInput)
	ErrInvalidScore         = fmt.Errorf("%w: score must be between %d and %d", ErrInvalidInput, MinScore, MaxScore)
	ErrNoSpendingCategories = fmt.Errorf("%w: choose at least one spending category", ErrInvalidInput)
	ErrNoGoals              = fmt.Errorf("%w: choose at least one goal", ErrInvalidInput)
	ErrFieldTooLong         = fmt.Errorf("%w: value is too long", ErrInvalidInput)
)
