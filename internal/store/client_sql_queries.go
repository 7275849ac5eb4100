// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const (
	kvTable        = "client_kv"
	kvSlotColumn   = "slot"
	kvValueColumn  = "value"
	kvUpdatedAtCol = "updated_at"

	upsertKVSuffix = "ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// sqliteBuilder builds statements with SQLite's "?" placeholders.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
