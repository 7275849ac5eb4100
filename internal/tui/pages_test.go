// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
	"github.com/MKhiriev/fin-tracker-client/models"
)

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)
	m.inputs[0].SetValue("a@b.com")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Пожалуйста, заполните все поля.", m.errMsg)
}

func TestLoginModel_OpensRegistration(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Screen: guard.ScreenRegister}, cmd())
}

func TestLoginModel_TabCyclesFocus(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.inputs[0].SetValue("a@b.com")
	m.inputs[1].SetValue("anna")
	m.inputs[2].SetValue("secret123")
	m.inputs[3].SetValue("secret124")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}

func TestRegisterModel_ResultError(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)
	m.submitting = true

	m.Update(registerResultMsg{err: fmt.Errorf("%w: taken", session.ErrAccountExists)})

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "уже существует")
}

func fillStep(m *OnboardingModel, values ...string) {
	for i, v := range values {
		m.steps[m.step].fields[i].input.SetValue(v)
	}
	m.focus = len(m.steps[m.step].fields) - 1
}

func newOnboardingPage(t *testing.T) (*OnboardingModel, *uiFixture) {
	t.Helper()

	f := newUIFixture(t)
	return NewOnboardingModel(context.Background(), f.services.OnboardingService), f
}

func TestOnboardingModel_StepValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		wantErr string
	}{
		{name: "not a number", values: []string{"Анна", "abc", "female"}, wantErr: "введите целое число"},
		{name: "age out of range", values: []string{"Анна", "130", "female"}, wantErr: "Возраст должен быть от 1 до 120"},
		{name: "missing field", values: []string{"Анна", "30", ""}, wantErr: "обязательно"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newOnboardingPage(t)
			fillStep(m, tt.values...)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Nil(t, cmd)
			assert.Equal(t, 0, m.step)
			assert.Contains(t, m.errMsg, tt.wantErr)
		})
	}
}

func TestOnboardingModel_WalksStepsAndSubmits(t *testing.T) {
	m, f := newOnboardingPage(t)
	f.bootstrapSignedIn(t, false)

	answers := [][]string{
		{"Анна", "30", "female"},
		{"100000", "work", "3"},
		{"60000", "еда, транспорт"},
		{"отпуск"},
		{"3", "2", "4", "monthly"},
		{"да", "no", "нет"},
	}

	for i, values := range answers[:len(answers)-1] {
		require.Equal(t, i, m.step)
		fillStep(m, values...)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.Nil(t, cmd)
		require.Empty(t, m.errMsg)
	}

	require.Equal(t, len(answers)-1, m.step)
	fillStep(m, answers[len(answers)-1]...)

	want := models.OnboardingProfile{
		Name: "Анна", Age: 30, Gender: "female",
		MonthlyIncome: 100000, IncomeSource: "work", IncomeStability: 3,
		MonthlyExpenses: 60000, SpendingCategories: []string{"еда", "транспорт"},
		Goals:               []string{"отпуск"},
		FinancialConfidence: 3, SpendingImpulsiveness: 2, FinancialStress: 4, SavingFrequency: "monthly",
		TracksExpenses: true, UsedFinancialApps: "no", WantsMotivation: false,
	}
	f.adapter.EXPECT().SubmitOnboarding(gomock.Any(), want).Return(models.OnboardingResult{Message: "ok", ProfileID: "p1"}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	require.Equal(t, onboardingSubmittedMsg{}, msg)
	assert.Equal(t, session.AuthenticatedComplete, f.authority.State())

	m.Update(msg)
	assert.False(t, m.submitting)
	assert.Equal(t, 0, m.step)
}

func TestOnboardingModel_EscGoesBack(t *testing.T) {
	m, _ := newOnboardingPage(t)
	fillStep(m, "Анна", "30", "female")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.step)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0, m.step)
	assert.Equal(t, "Анна", m.steps[0].fields[0].input.Value())
}

func TestOnboardingModel_SubmitError(t *testing.T) {
	m, _ := newOnboardingPage(t)
	m.submitting = true

	m.Update(onboardingSubmittedMsg{err: fmt.Errorf("%w: boom", service.ErrOnboardingFailed)})

	assert.False(t, m.submitting)
	assert.Equal(t, "Не удалось сохранить профиль.", m.errMsg)
}

func TestProfileModel_CopyUserID(t *testing.T) {
	var copied string
	m := NewProfileModel(context.Background(), nil)
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(keyRunes("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Нечего копировать", m.errMsg)

	user := testUser
	m.SetSession(session.Session{AccessToken: "T", CurrentUser: &user})
	_, cmd = m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, testUser.ID, copied)
	assert.Empty(t, m.errMsg)

	_, cmd = m.Update(cmd())
	assert.Equal(t, "ID скопирован", m.status)
	assert.NotNil(t, cmd)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestProfileModel_CopyFailure(t *testing.T) {
	m := NewProfileModel(context.Background(), nil)
	m.writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	user := testUser
	m.SetSession(session.Session{AccessToken: "T", CurrentUser: &user})

	_, cmd := m.Update(keyRunes("c"))

	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestDashboardModel_Menu(t *testing.T) {
	m := NewDashboardModel()
	user := testUser
	m.SetSession(session.Session{AccessToken: "T", CurrentUser: &user})
	assert.Contains(t, m.View(), "Добро пожаловать, anna!")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Screen: guard.ScreenProfile}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, logoutRequestMsg{}, cmd())
}

func TestFormatCreatedAt(t *testing.T) {
	assert.Equal(t, "02.01.2026", formatCreatedAt("2026-01-02T03:04:05.123456"))
	assert.Equal(t, "02.01.2026", formatCreatedAt("2026-01-02T03:04:05Z"))
	assert.Equal(t, "yesterday", formatCreatedAt("yesterday"))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid credentials", err: session.ErrInvalidCredentials, want: "Неверный email или пароль."},
		{name: "short password", err: fmt.Errorf("%w: %w", session.ErrValidationFailed, validators.ErrPasswordTooShort), want: "Пароль должен содержать минимум 8 символов"},
		{
			name: "server detail",
			err:  fmt.Errorf("%w: %w", session.ErrValidationFailed, adapter.NewStatusError(400, "Password must be at least 8 characters long")),
			want: "Password must be at least 8 characters long",
		},
		{name: "network", err: fmt.Errorf("%w: dial", session.ErrNetworkUnavailable), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "busy", err: session.ErrBusy, want: "Сессия ещё загружается, попробуйте позже"},
		{name: "login failed", err: fmt.Errorf("%w: %v", session.ErrLoginFailed, session.ErrSessionExpired), want: "Произошла ошибка при входе."},
		{name: "raw transport", err: errors.New("dial tcp 127.0.0.1:8000: connection refused"), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
