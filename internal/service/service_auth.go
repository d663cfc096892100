// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/internal/validators"
	"github.com/MKhiriev/go-field-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies client credentials against argon2id hashes kept by a
// ClientRepository and issues HS256 JWTs for them.
type authService struct {
	// clientRepository is the data-access layer used to create and look up
	// clients.
	clientRepository store.ClientRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// ClientRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(clientRepository store.ClientRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		clientRepository: clientRepository,
		validator:        validators.NewSinkRequestValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterClient hashes secret and stores the client.
//
// Returns ErrInvalidDataProvided for an empty id or secret, or a wrapped
// storage error (see store.ErrClientAlreadyExists).
func (a *authService) RegisterClient(ctx context.Context, clientID, secret string) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.TokenRequest{ClientID: clientID, ClientSecret: secret}); err != nil {
		log.Err(err).Str("func", "authService.RegisterClient").Str("client_id", clientID).Msg("invalid client data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashSecret(secret)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterClient").Msg("error hashing client secret")
		return fmt.Errorf("hash client secret: %w", err)
	}

	if err = a.clientRepository.CreateClient(ctx, clientID, hash); err != nil {
		log.Err(err).Str("func", "authService.RegisterClient").Str("client_id", clientID).Msg("client creation ended with error")
		return fmt.Errorf("client creation ended with error: %w", err)
	}

	return nil
}

// IssueToken authenticates a client and signs a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if the id or the secret is empty.
//   - ErrInvalidCredentials if the client is unknown or the secret is wrong.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Str("client_id", req.ClientID).Msg("invalid token request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.clientRepository.GetClientSecretHash(ctx, req.ClientID)
	if errors.Is(err, store.ErrClientNotFound) {
		log.Warn().Str("func", "authService.IssueToken").Str("client_id", req.ClientID).Msg("unknown client")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Str("client_id", req.ClientID).Msg("client lookup failed")
		return models.Token{}, fmt.Errorf("client lookup failed: %w", err)
	}

	ok, err := utils.VerifySecret(req.ClientSecret, hash)
	if err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Str("client_id", req.ClientID).Msg("stored secret hash is unusable")
		return models.Token{}, fmt.Errorf("verify client secret: %w", err)
	}
	if !ok {
		log.Warn().Str("func", "authService.IssueToken").Str("client_id", req.ClientID).Msg("wrong client secret")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, req.ClientID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
