// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
)

// defaultRefreshLeeway is how long before expiry a cached token is replaced.
const defaultRefreshLeeway = 30 * time.Second

// HTTPIdentity exchanges client credentials for a bearer token at the sink
// server and caches it until shortly before it expires.
//
// The client must be initialised explicitly with [HTTPIdentity.Initialize]
// before the first Authenticate call.
type HTTPIdentity struct {
	client   *utils.HTTPClient
	identity config.ClientIdentity

	leeway time.Duration
	now    func() time.Time

	mu          sync.Mutex
	initialized bool
	cred        models.Credential

	logger *logger.Logger
}

// HTTPIdentityOption configures an [HTTPIdentity].
type HTTPIdentityOption func(*HTTPIdentity)

// WithRefreshLeeway sets how long before expiry the cached token is renewed.
func WithRefreshLeeway(d time.Duration) HTTPIdentityOption {
	return func(h *HTTPIdentity) {
		if d >= 0 {
			h.leeway = d
		}
	}
}

// WithClock replaces the time source used for expiry checks.
func WithClock(now func() time.Time) HTTPIdentityOption {
	return func(h *HTTPIdentity) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHTTPIdentity builds an identity client for the sink server at
// adapterCfg.HTTPAddress authenticating as identity.
func NewHTTPIdentity(adapterCfg config.ClientAdapter, identity config.ClientIdentity, logger *logger.Logger, opts ...HTTPIdentityOption) (*HTTPIdentity, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid identity http address: %w", err)
	}

	h := &HTTPIdentity{
		client: utils.NewHTTPClient(
			utils.WithBaseURL(baseURL),
			utils.WithTimeout(adapterCfg.RequestTimeout),
		),
		identity: identity,
		leeway:   defaultRefreshLeeway,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Initialize checks the configured credentials and performs the first token
// exchange. Once the credentials are present the identity counts as
// initialised even if the exchange fails, so a client that starts offline
// authenticates on its next sync.
func (h *HTTPIdentity) Initialize(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if strings.TrimSpace(h.identity.ClientID) == "" || h.identity.ClientSecret == "" {
		return fmt.Errorf("%w: client id and secret are required", ErrAuthDenied)
	}
	h.initialized = true

	cred, err := h.exchange(ctx)
	if err != nil {
		return err
	}

	h.cred = cred
	return nil
}

// Authenticate implements [IdentityProvider]. The cached credential is
// returned while it is valid; otherwise a new token is requested.
func (h *HTTPIdentity) Authenticate(ctx context.Context) (models.Credential, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.initialized {
		return models.Credential{}, ErrIdentityNotInitialized
	}

	if h.cred.Token != "" && !h.cred.Expired(h.now(), h.leeway) {
		return h.cred, nil
	}

	cred, err := h.exchange(ctx)
	if err != nil {
		h.cred = models.Credential{}
		return models.Credential{}, err
	}

	h.cred = cred
	return cred, nil
}

func (h *HTTPIdentity) exchange(ctx context.Context) (models.Credential, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{
			ClientID:     h.identity.ClientID,
			ClientSecret: h.identity.ClientSecret,
		}).
		Post("/api/auth/token")
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPIdentity.exchange").Msg("token request failed")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrAuthUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "HTTPIdentity.exchange").
			Int("status", resp.StatusCode()).
			Msg("token request rejected")
		if isClientRejection(resp.StatusCode()) {
			return models.Credential{}, fmt.Errorf("%w: %w", ErrAuthDenied, err)
		}
		return models.Credential{}, fmt.Errorf("%w: %w", ErrAuthUnavailable, err)
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.Credential{}, fmt.Errorf("%w: decode token response: %w", ErrAuthUnavailable, err)
	}
	if token.AccessToken == "" {
		return models.Credential{}, fmt.Errorf("%w: empty access token", ErrAuthUnavailable)
	}

	expiresAt := token.ExpiresAt
	if expiresAt.IsZero() {
		// fall back to the exp claim; a token without one never expires
		exp, expErr := utils.ParseExpiryFromJWT(token.AccessToken)
		if expErr != nil {
			return models.Credential{}, fmt.Errorf("%w: %w", ErrAuthUnavailable, expErr)
		}
		expiresAt = exp
	}

	h.logger.Debug().
		Str("func", "HTTPIdentity.exchange").
		Time("expires_at", expiresAt).
		Msg("token issued")

	return models.Credential{Token: token.AccessToken, ExpiresAt: expiresAt}, nil
}

// LocalIdentity is the identity provider of sinks that need no
// authentication, such as the local workbook.
type LocalIdentity struct{}

// Authenticate implements [IdentityProvider]; it always succeeds with an
// empty, non-expiring credential.
func (LocalIdentity) Authenticate(context.Context) (models.Credential, error) {
	return models.Credential{}, nil
}
