package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/lightning"
	"github.com/aussiebroadwan/paygate/pkg/l402"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

var (
	ErrInvoiceCreation = errors.New("invoice_creation_failed")
	ErrResourceFree    = errors.New("resource is free, no challenge required")
)

// Challenge TTLs. A one-shot purchase (publish listing fee) gets a short
// window; a content purchase gets a full day so the buyer can re-open the
// document without paying again.
const (
	PurchaseTTL = 1 * time.Hour
	ReaccessTTL = 24 * time.Hour
)

// ChallengeService builds L402 payment challenges. The invoice comes from
// the platform LND node for platform-custodied resources and from the
// creator's Lightning Address (LNURL-pay) for creator-custodied ones. There
// is never a fallback from one source to the other.
type ChallengeService struct {
	Codec *l402.Codec
	Node  lightning.NodeClient
	LNURL lightning.AddressClient
}

// BuildChallenge requests an invoice for the resource, mints a macaroon
// bound to {resourceID, paymentHash} and returns the challenge data the
// HTTP layer serves with a 402.
func (s *ChallengeService) BuildChallenge(
	ctx context.Context,
	resourceID string,
	priceSats int64,
	payoutAddress string,
	ttl time.Duration,
) (domain.Challenge, error) {
	log := slogx.FromContext(ctx)

	if priceSats <= 0 {
		return domain.Challenge{}, ErrResourceFree
	}

	// 1. Request an invoice from the correct source.
	memo := fmt.Sprintf("paygate:%s", resourceID)

	var (
		inv         domain.Invoice
		paymentType domain.PaymentType
		err         error
	)
	if payoutAddress == "" {
		paymentType = domain.PaymentTypePlatform
		inv, err = s.Node.CreateInvoice(ctx, priceSats, memo)
	} else {
		paymentType = domain.PaymentTypeCreator
		inv, err = s.LNURL.CreateInvoice(ctx, payoutAddress, priceSats, memo)
	}
	if err != nil {
		log.Error("invoice creation failed",
			slog.String("resource_id", resourceID),
			slog.String("payment_type", string(paymentType)),
			slog.Any("error", err),
		)
		return domain.Challenge{}, ErrInvoiceCreation
	}

	// 2. Mint a macaroon bound to the resource and this invoice's hash. The
	// decode recovers the expiry the codec stamped into the token.
	macaroon := s.Codec.Mint(resourceID, inv.PaymentHash, ttl)
	token, err := s.Codec.Decode(macaroon)
	if err != nil {
		log.Error("minted macaroon failed to decode", slog.Any("error", err))
		return domain.Challenge{}, err
	}

	return domain.Challenge{
		ResourceID:     resourceID,
		Macaroon:       macaroon,
		PaymentHash:    token.PaymentHash,
		PaymentRequest: inv.PaymentRequest,
		ExpiresAt:      token.ExpiresAt,
		PriceSats:      priceSats,
		PaymentType:    paymentType,
		VerifyURL:      inv.VerifyURL,
	}, nil
}
