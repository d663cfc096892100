// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the sink server process.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// the listener has drained.
	RunServer()

	// Shutdown gracefully stops the listener.
	Shutdown()
}
