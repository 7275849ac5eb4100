// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity record returned by GET /auth/me.
// It is the only user representation the client keeps in memory.
type User struct {
	// ID is the server-assigned account identifier (UUID string).
	ID string `json:"id"`

	// Email is the unique login e-mail of the account.
	Email string `json:"email"`

	// Username is the public display name chosen at registration.
	Username string `json:"username"`

	// IsActive reports whether the account is enabled on the server.
	IsActive bool `json:"is_active"`

	// CreatedAt is the ISO-8601 creation timestamp as sent by the server.
	// Empty when the record was assembled from a registration response
	// rather than /auth/me.
	CreatedAt string `json:"created_at"`
}

// Credentials is the request body of POST /auth/login.
// It is ephemeral and must never be persisted or logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the request body of POST /auth/register.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
