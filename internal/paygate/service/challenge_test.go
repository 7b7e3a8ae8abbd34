package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildChallengePlatform(t *testing.T) {
	ctx := context.Background()
	codec := testCodec()
	node := &stubNode{invoice: domain.Invoice{
		PaymentRequest: "lnbc5u1platform",
		PaymentHash:    "ab12cd34",
	}}
	svc := &ChallengeService{Codec: codec, Node: node, LNURL: &stubLNURL{}}

	challenge, err := svc.BuildChallenge(ctx, "doc_1", 500, "", time.Hour)
	require.NoError(t, err)

	require.Equal(t, domain.PaymentTypePlatform, challenge.PaymentType)
	require.Equal(t, "lnbc5u1platform", challenge.PaymentRequest)
	require.Equal(t, "ab12cd34", challenge.PaymentHash)
	require.Empty(t, challenge.VerifyURL)
	require.Equal(t, int64(500), node.lastAmount)

	// The macaroon must be bound to the resource and the invoice hash.
	hash, err := codec.Verify(challenge.Macaroon, "doc_1")
	require.NoError(t, err)
	require.Equal(t, "ab12cd34", hash)
}

func TestBuildChallengeCreator(t *testing.T) {
	ctx := context.Background()
	lnurl := &stubLNURL{invoice: domain.Invoice{
		PaymentRequest: "lnbc5u1creator",
		PaymentHash:    "ff00ff00",
		VerifyURL:      "https://wallet.example/verify/abc",
	}}
	svc := &ChallengeService{Codec: testCodec(), Node: &stubNode{}, LNURL: lnurl}

	challenge, err := svc.BuildChallenge(ctx, "doc_2", 750, "alice@wallet.example", time.Hour)
	require.NoError(t, err)

	require.Equal(t, domain.PaymentTypeCreator, challenge.PaymentType)
	require.Equal(t, "https://wallet.example/verify/abc", challenge.VerifyURL)
	require.Equal(t, "alice@wallet.example", lnurl.lastAddress)
}

func TestBuildChallengeFreeResource(t *testing.T) {
	svc := &ChallengeService{Codec: testCodec(), Node: &stubNode{}, LNURL: &stubLNURL{}}

	_, err := svc.BuildChallenge(context.Background(), "doc_free", 0, "", time.Hour)
	require.ErrorIs(t, err, ErrResourceFree)
}

func TestBuildChallengeInvoiceFailure(t *testing.T) {
	t.Run("platform node down", func(t *testing.T) {
		node := &stubNode{createErr: context.DeadlineExceeded}
		svc := &ChallengeService{Codec: testCodec(), Node: node, LNURL: &stubLNURL{}}

		_, err := svc.BuildChallenge(context.Background(), "doc_1", 100, "", time.Hour)
		require.ErrorIs(t, err, ErrInvoiceCreation)
	})

	t.Run("lnurl endpoint down, no fallback to platform", func(t *testing.T) {
		node := &stubNode{invoice: domain.Invoice{PaymentRequest: "lnbc1", PaymentHash: "aa"}}
		lnurl := &stubLNURL{createErr: context.DeadlineExceeded}
		svc := &ChallengeService{Codec: testCodec(), Node: node, LNURL: lnurl}

		_, err := svc.BuildChallenge(context.Background(), "doc_2", 100, "bob@wallet.example", time.Hour)
		require.ErrorIs(t, err, ErrInvoiceCreation)
		require.Zero(t, node.lastAmount, "platform node must not be asked for a creator invoice")
	})
}
