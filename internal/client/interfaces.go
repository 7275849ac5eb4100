// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end run by [App].
type UI interface {
	// Run blocks until the user quits or ctx ends.
	Run(ctx context.Context) error
}

// Resource is released when the application stops.
type Resource = io.Closer
