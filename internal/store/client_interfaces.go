// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenStorage is the single persistent key/value slot holding the bearer
// token between client runs. It is the only durable state the session layer
// owns.
type TokenStorage interface {
	// Load returns the persisted token, or [ErrTokenNotFound] when the slot
	// is empty.
	Load(ctx context.Context) (string, error)

	// Save overwrites the slot with token. An empty token is rejected with
	// [ErrEmptyToken].
	Save(ctx context.Context, token string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
