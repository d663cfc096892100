// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless field client runtime.
//
// It runs an initial sync pass over every campaign and, when a sync interval
// is configured, keeps the background sync worker running until the process
// is asked to stop.
package client
