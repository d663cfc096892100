// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token issued by the sink server.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim carries the client ID the token was issued to.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is a cached copy of the "sub" claim.
	ClientID string `json:"-"`
}

// GetClientID extracts the client identifier from the token's subject claim.
func (t *Token) GetClientID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting client id from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Credential is what a successful authentication yields to the sync engine.
// It is handed to the sink adapter and attached to every sink request.
type Credential struct {
	// Token is the bearer token. It is empty for sinks that need no
	// authentication.
	Token string

	// ExpiresAt is the token expiry; zero means the credential does not
	// expire.
	ExpiresAt time.Time
}

// Expired reports whether the credential expires before now+leeway.
func (c Credential) Expired(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(c.ExpiresAt)
}
