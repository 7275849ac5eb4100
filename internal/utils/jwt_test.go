// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestInspectToken_ReadsClaimsWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "4b1c6f0e-user",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := InspectToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Subject != "4b1c6f0e-user" {
		t.Errorf("unexpected subject %q", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("unexpected exp %v, want %v", claims.ExpiresAt, exp)
	}
	if claims.Expired(time.Now()) {
		t.Error("token should not be expired")
	}
}

func TestInspectToken_Expired(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	claims, err := InspectToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !claims.Expired(time.Now()) {
		t.Error("token should be expired")
	}
}

func TestInspectToken_OpaqueToken(t *testing.T) {
	_, err := InspectToken("T")
	if !errors.Is(err, ErrNotJWT) {
		t.Fatalf("expected ErrNotJWT, got %v", err)
	}
}

func TestTokenClaims_NoExpiryNeverExpires(t *testing.T) {
	if (TokenClaims{}).Expired(time.Now()) {
		t.Error("claims without exp must not be expired")
	}
}
