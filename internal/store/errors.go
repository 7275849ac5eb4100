// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the token slot. Callers match them with [errors.Is].
var (
	// ErrTokenNotFound is returned by Load when no token is persisted.
	ErrTokenNotFound = errors.New("persisted token not found")

	// ErrEmptyToken is returned by Save for a blank token.
	ErrEmptyToken = errors.New("empty token")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
