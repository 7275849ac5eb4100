// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by InspectToken for bearer tokens that are not JWTs.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenClaims is the subset of registered claims the client reads from its
// bearer token for diagnostics.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the exp claim is set and lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// InspectToken decodes the claims of a JWT bearer token WITHOUT verifying its
// signature. The server stays the only authority on token validity; the
// result is only used for logging.
func InspectToken(tokenString string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	var out TokenClaims
	out.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
