// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid client credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	// ErrStorageUnavailable marks a transient storage failure; repeating the
	// request later may succeed.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
