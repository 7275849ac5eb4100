// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTraceID_IsUniqueUUID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()

	if a == b {
		t.Fatalf("expected distinct trace ids, got %s twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("trace id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected uuid v7, got v%d", parsed.Version())
	}
}
