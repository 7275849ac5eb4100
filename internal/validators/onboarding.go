// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/fin-tracker-client/models"
)

// Field names accepted by [OnboardingValidator], grouped the way the
// questionnaire is split into steps.
const (
	FieldPersonal   = "personal"
	FieldIncome     = "income"
	FieldExpenses   = "expenses"
	FieldGoals      = "goals"
	FieldPsychology = "psychology"
	FieldHabits     = "habits"
)

// Bounds enforced by the onboarding endpoint.
const (
	MaxNameLength      = 255
	MinAge             = 1
	MaxAge             = 120
	MinScore           = 1
	MaxScore           = 5
	MaxShortTextLength = 100
)

// OnboardingValidator validates the onboarding questionnaire.
type OnboardingValidator struct{}

// NewOnboardingValidator returns a [Validator] for [models.OnboardingProfile].
func NewOnboardingValidator() Validator {
	return &OnboardingValidator{}
}

// Validate validates obj step by step. fields names the steps to check
// (FieldPersonal, FieldIncome, ...); all steps are checked when omitted, which
// is what the final submit does.
func (v *OnboardingValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var p models.OnboardingProfile
	switch value := obj.(type) {
	case models.OnboardingProfile:
		p = value
	case *models.OnboardingProfile:
		p = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldPersonal, FieldIncome, FieldExpenses, FieldGoals, FieldPsychology, FieldHabits}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldPersonal:
			err = validatePersonal(p)
		case FieldIncome:
			err = validateIncome(p)
		case FieldExpenses:
			err = validateExpenses(p)
		case FieldGoals:
			if len(nonBlank(p.Goals)) == 0 {
				err = ErrNoGoals
			}
		case FieldPsychology:
			err = validatePsychology(p)
		case FieldHabits:
			err = maxLen(p.UsedFinancialApps)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validatePersonal(p models.OnboardingProfile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return ErrInvalidAge
	}
	return maxLen(p.Gender)
}

func validateIncome(p models.OnboardingProfile) error {
	if p.MonthlyIncome < 0 {
		return ErrNegativeIncome
	}
	if !isScore(p.IncomeStability) {
		return ErrInvalidScore
	}
	return maxLen(p.IncomeSource)
}

func validateExpenses(p models.OnboardingProfile) error {
	if p.MonthlyExpenses < 0 {
		return ErrNegativeExpenses
	}
	if len(nonBlank(p.SpendingCategories)) == 0 {
		return ErrNoSpendingCategories
	}
	return nil
}

func validatePsychology(p models.OnboardingProfile) error {
	for _, score := range []int{p.FinancialConfidence, p.SpendingImpulsiveness, p.FinancialStress} {
		if !isScore(score) {
			return ErrInvalidScore
		}
	}
	return maxLen(p.SavingFrequency)
}

func isScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

func maxLen(s string) error {
	if utf8.RuneCountInString(s) > MaxShortTextLength {
		return ErrFieldTooLong
	}
	return nil
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
