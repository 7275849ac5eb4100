// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/migrations"
)

// DB wraps the local *sql.DB together with the logger used by repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded client schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
