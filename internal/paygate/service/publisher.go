package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/pkg/cryptox"
	"github.com/aussiebroadwan/paygate/pkg/idx"
	"github.com/aussiebroadwan/paygate/pkg/jwtx"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

var ErrInvalidClient = errors.New("invalid publisher credentials")

// PublisherService authenticates publishers. API keys are exchanged for
// short-lived session JWTs; the key itself never travels on publish calls.
type PublisherService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// ExchangeAPIKey verifies a publisher's API key and issues a session token.
// Lookup failures and hash mismatches are indistinguishable to the caller.
func (s *PublisherService) ExchangeAPIKey(ctx context.Context, name, apiKey string) (token string, expiresAt time.Time, err error) {
	log := slogx.FromContext(ctx)

	publisher, err := s.Store.Publishers().GetPublisherByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", time.Time{}, ErrInvalidClient
		}
		log.Error("failed to fetch publisher", slog.Any("error", err))
		return "", time.Time{}, err
	}

	if err := cryptox.VerifyPassword(apiKey, publisher.APIKeyHash); err != nil {
		log.Warn("publisher api key rejected", slog.String("publisher", name))
		return "", time.Time{}, ErrInvalidClient
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := time.Now()
	claims := jwtx.NewSessionClaims(publisher.ID, publisher.Name, s.Issuer, ttl, now)

	token, err = s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", time.Time{}, err
	}
	return token, now.Add(ttl), nil
}

// CreatePublisher registers a publisher and returns the account with its
// plaintext API key. The key is argon2id-hashed at rest and cannot be
// recovered later.
func (s *PublisherService) CreatePublisher(ctx context.Context, name string) (domain.Publisher, string, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Publisher{}, "", ErrInvalidClient
	}

	apiKey, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate api key", slog.Any("error", err))
		return domain.Publisher{}, "", err
	}
	hash, err := cryptox.HashPassword(apiKey)
	if err != nil {
		log.Error("failed to hash api key", slog.Any("error", err))
		return domain.Publisher{}, "", err
	}

	publisher := domain.Publisher{
		ID:         idx.New().String(),
		Name:       name,
		APIKeyHash: hash,
	}
	if err := s.Store.Publishers().CreatePublisher(ctx, publisher); err != nil {
		log.Error("failed to create publisher", slog.Any("error", err))
		return domain.Publisher{}, "", err
	}

	log.Info("publisher created",
		slog.String("publisher_id", publisher.ID),
		slog.String("name", name),
	)
	return publisher, apiKey, nil
}
