// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fin-tracker-client/internal/logger"
)

// tokenRepository is the SQLite-backed [TokenStorage]. The token lives in
// the client_kv table under a fixed slot name.
type tokenRepository struct {
	db     *DB
	slot   string
	now    func() time.Time
	logger *logger.Logger
}

// NewTokenRepository returns a [TokenStorage] keeping the token under slot.
func NewTokenRepository(db *DB, slot string, logger *logger.Logger) TokenStorage {
	return &tokenRepository{
		db:     db,
		slot:   slot,
		now:    time.Now,
		logger: logger,
	}
}

func (r *tokenRepository) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqliteBuilder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvSlotColumn: r.slot}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		log.Err(err).
			Str("func", "tokenRepository.Load").
			Str("slot", r.slot).
			Msg("failed to read token slot")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if strings.TrimSpace(value) == "" {
		return "", ErrTokenNotFound
	}

	return value, nil
}

func (r *tokenRepository) Save(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	query, args, err := sqliteBuilder.
		Insert(kvTable).
		Columns(kvSlotColumn, kvValueColumn, kvUpdatedAtCol).
		Values(r.slot, token, r.now().UTC()).
		Suffix(upsertKVSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Save").
			Str("slot", r.slot).
			Msg("failed to upsert token slot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sqliteBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvSlotColumn: r.slot}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tokenRepository.Clear").
			Str("slot", r.slot).
			Msg("failed to clear token slot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
