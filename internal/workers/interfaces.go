// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background workers of the field client.
package workers

import "context"

// Worker is a background process. Run blocks until ctx is cancelled and the
// worker has released everything it started.
type Worker interface {
	Run(ctx context.Context)
}
