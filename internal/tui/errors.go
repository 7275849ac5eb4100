// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
)

// ErrUserQuit is returned by [TUI.Run] when the user closed the program with
// ctrl+c.
var ErrUserQuit = errors.New("вышел из программы")

var inputMessages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyEmail, "Укажите email"},
	{validators.ErrInvalidEmail, "Некорректный email"},
	{validators.ErrEmptyUsername, "Укажите имя пользователя"},
	{validators.ErrLongUsername, "Слишком длинное имя пользователя"},
	{validators.ErrEmptyPassword, "Укажите пароль"},
	{validators.ErrPasswordTooShort, "Пароль должен содержать минимум 8 символов"},
	{validators.ErrInvalidName, "Имя должно содержать от 1 до 255 символов"},
	{validators.ErrInvalidAge, "Возраст должен быть от 1 до 120"},
	{validators.ErrNegativeIncome, "Доход не может быть отрицательным"},
	{validators.ErrNegativeExpenses, "Расходы не могут быть отрицательными"},
	{validators.ErrInvalidScore, "Оценка должна быть от 1 до 5"},
	{validators.ErrNoSpendingCategories, "Укажите хотя бы одну категорию трат"},
	{validators.ErrNoGoals, "Укажите хотя бы одну цель"},
	{validators.ErrFieldTooLong, "Слишком длинное значение"},
}

// humanizeError turns an error of the session layer into a message for the
// form that triggered the operation.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range inputMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Неверный email или пароль."
	case errors.Is(err, session.ErrAccountExists):
		return "Пользователь с таким email или именем уже существует."
	case errors.Is(err, session.ErrValidationFailed):
		if detail := adapter.Detail(err); detail != "" {
			return detail
		}
		return "Проверьте введённые данные."
	case errors.Is(err, session.ErrNetworkUnavailable):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, session.ErrBusy):
		return "Сессия ещё загружается, попробуйте позже"
	case errors.Is(err, session.ErrSessionExpired), errors.Is(err, service.ErrNotSignedIn):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, session.ErrLoginFailed):
		return "Произошла ошибка при входе."
	case errors.Is(err, session.ErrRegistrationFailed):
		return "Произошла ошибка при регистрации."
	case errors.Is(err, service.ErrOnboardingFailed):
		return "Не удалось сохранить профиль."
	case errors.Is(err, guard.ErrRedirectLoop):
		return "Не удалось открыть экран"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
