// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// OnboardingProfile is the questionnaire submitted to POST /onboarding/ once
// the user has walked through every onboarding step.
type OnboardingProfile struct {
	// personal
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`

	// income
	MonthlyIncome   int    `json:"monthly_income"`
	IncomeSource    string `json:"income_source"`
	IncomeStability int    `json:"income_stability"`

	// expenses
	MonthlyExpenses    int      `json:"monthly_expenses"`
	SpendingCategories []string `json:"spending_categories"`

	// goals
	Goals []string `json:"goals"`

	// financial psychology, every score is on a 1..5 scale
	FinancialConfidence   int    `json:"financial_confidence"`
	SpendingImpulsiveness int    `json:"spending_impulsiveness"`
	FinancialStress       int    `json:"financial_stress"`
	SavingFrequency       string `json:"saving_frequency"`

	// habits
	TracksExpenses    bool   `json:"tracks_expenses"`
	UsedFinancialApps string `json:"used_financial_apps"`
	WantsMotivation   bool   `json:"wants_motivation"`
}

// OnboardingResult is the response body of POST /onboarding/.
type OnboardingResult struct {
	Message   string `json:"message"`
	ProfileID string `json:"profile_id"`
}

// APIError is the error body produced by the remote API for every non-2xx
// response. Detail is usually a string ({"detail": "..."}); request
// validation failures carry a list of {"loc", "msg", "type"} objects instead.
type APIError struct {
	Detail json.RawMessage `json:"detail"`
}

// Message returns a human-readable form of Detail: the string itself, or the
// first "msg" of a validation list. Empty when neither shape matches.
func (e APIError) Message() string {
	if len(e.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(e.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}

	return ""
}
