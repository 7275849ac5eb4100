// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client
// layers: type-safe context keys, trace identifiers, the resty client
// wrapper and unverified JWT introspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the trace identifier of the current
// user action is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// BearerTokenCtxKey is the key under which a bearer token bound to a single
// call is stored. It takes precedence over the token attached to the adapter.
var BearerTokenCtxKey = contextKey("bearerToken")

// WithBearerToken returns a copy of ctx whose authenticated requests use token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, BearerTokenCtxKey, token)
}

// GetBearerTokenFromContext returns the bearer token bound to ctx, if any.
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenCtxKey).(string)
	return token, ok && token != ""
}
