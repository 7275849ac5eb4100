// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// HTTP status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrNetwork wraps failures where no HTTP response was received
	// (connection refused, DNS, timeout, cancelled context).
	ErrNetwork = errors.New("network unavailable")

	// ErrDecode is returned when a 2xx body is not valid JSON or lacks a
	// required field.
	ErrDecode = errors.New("malformed response body")
)
