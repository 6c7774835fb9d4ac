// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is cancelled and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
