// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/fin-tracker-client/models"
)

// StatusError is a non-2xx API response. It unwraps to the status sentinel
// so that callers can still match with errors.Is.
type StatusError struct {
	StatusCode int
	Detail     string

	kind error
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// Detail returns the server's "detail" message carried by err, or "".
func Detail(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Detail
	}
	return ""
}

// NewStatusError builds the error for an HTTP status code and the server's
// detail message.
func NewStatusError(statusCode int, detail string) *StatusError {
	statusErr := &StatusError{StatusCode: statusCode, Detail: detail}

	switch statusCode {
	case http.StatusBadRequest:
		statusErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.kind = ErrForbidden
	case http.StatusNotFound:
		statusErr.kind = ErrNotFound
	case http.StatusConflict:
		statusErr.kind = ErrConflict
	case http.StatusUnprocessableEntity:
		statusErr.kind = ErrUnprocessable
	case http.StatusBadGateway:
		statusErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.kind = ErrInternalServerError
	default:
		statusErr.kind = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, statusCode)
		if statusErr.Detail == "" {
			statusErr.Detail = http.StatusText(statusCode)
		}
	}

	return statusErr
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewStatusError(resp.StatusCode(), detailFromBody(resp.Body()))
}

// detailFromBody extracts the FastAPI "detail" message, falling back to the
// raw body text for non-JSON responses (e.g. a proxy's HTML error page).
func detailFromBody(body []byte) string {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
