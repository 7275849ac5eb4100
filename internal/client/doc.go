// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle: it listens for stop signals, runs the
// terminal UI (which bootstraps the session) and releases the local storage
// on exit.
package client
