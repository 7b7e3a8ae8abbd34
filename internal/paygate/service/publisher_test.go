package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/paygate/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestPublisherService(t *testing.T) *PublisherService {
	t.Helper()

	return &PublisherService{
		Store:      newServiceTestStore(t),
		Signer:     jwtx.NewSigner([]byte("session-secret"), "paygate"),
		Issuer:     "paygate",
		SessionTTL: time.Hour,
	}
}

func TestPublisherKeyExchange(t *testing.T) {
	ctx := context.Background()
	svc := newTestPublisherService(t)

	publisher, apiKey, err := svc.CreatePublisher(ctx, "acme")
	require.NoError(t, err)
	require.NotEmpty(t, apiKey)
	require.NotContains(t, publisher.APIKeyHash, apiKey, "key must be stored hashed")

	token, expiresAt, err := svc.ExchangeAPIKey(ctx, "acme", apiKey)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, publisher.ID, claims.Subject)
	require.Equal(t, "acme", claims.PublisherName)
}

func TestPublisherKeyExchangeRejections(t *testing.T) {
	ctx := context.Background()
	svc := newTestPublisherService(t)

	_, apiKey, err := svc.CreatePublisher(ctx, "acme")
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, _, err := svc.ExchangeAPIKey(ctx, "acme", apiKey+"x")
		require.ErrorIs(t, err, ErrInvalidClient)
	})

	t.Run("unknown publisher", func(t *testing.T) {
		_, _, err := svc.ExchangeAPIKey(ctx, "ghost", apiKey)
		require.ErrorIs(t, err, ErrInvalidClient)
	})
}
