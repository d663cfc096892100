// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoSinkHandler   = errors.New("sink server: no HTTP handler to serve")
	errNoListenAddress = errors.New("sink server: listen address is empty")
)
