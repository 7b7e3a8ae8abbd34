package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/lightning"
	"github.com/aussiebroadwan/paygate/pkg/l402"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

var (
	ErrNotYetPaid          = errors.New("not_yet_paid")
	ErrUpstreamUnavailable = errors.New("upstream_unavailable")
	ErrVerifyURLMismatch   = errors.New("verify url does not belong to the payout address domain")
)

// VerifyService decides whether a presented credential proves payment for a
// resource. Platform resources are checked against our own node; creator
// resources are checked via the LNURL verify callback when the client has
// one, falling back to a preimage proof otherwise. The callback is the
// stronger proof so it always wins when both are presented.
//
// Verification is stateless and performs no retries; clients poll.
type VerifyService struct {
	Codec *l402.Codec
	Node  lightning.NodeClient
	LNURL lightning.AddressClient
}

// VerifyPayment runs the credential through token checks and then the
// settlement check appropriate for the resource's payment path.
func (s *VerifyService) VerifyPayment(
	ctx context.Context,
	resourceID string,
	payoutAddress string,
	req domain.VerifyRequest,
) domain.VerifyResult {
	log := slogx.FromContext(ctx)

	// 1. The macaroon must be well-formed, bound to this resource, unexpired
	// and authentically signed.
	paymentHash, err := s.Codec.Verify(req.Macaroon, resourceID)
	if err != nil {
		return domain.VerifyResult{Status: domain.StatusRejected, Reason: err}
	}

	// 2. Platform resources: ask our node whether the invoice settled.
	if payoutAddress == "" {
		settled, err := s.Node.LookupInvoice(ctx, paymentHash)
		if err != nil {
			log.Error("node invoice lookup failed",
				slog.String("payment_hash", paymentHash),
				slog.Any("error", err),
			)
			return domain.VerifyResult{Status: domain.StatusError, Reason: ErrUpstreamUnavailable}
		}
		if !settled {
			return domain.VerifyResult{Status: domain.StatusPending, Reason: ErrNotYetPaid}
		}
		return domain.VerifyResult{Status: domain.StatusPaid}
	}

	// 3. Creator resources, callback path. The verify URL is supplied by the
	// client, so it must live on the same domain as the payout address or it
	// proves nothing.
	if req.VerifyURL != "" {
		if err := checkVerifyURLDomain(req.VerifyURL, payoutAddress); err != nil {
			log.Warn("verify url rejected",
				slog.String("resource_id", resourceID),
				slog.String("verify_url", req.VerifyURL),
			)
			return domain.VerifyResult{Status: domain.StatusRejected, Reason: err}
		}

		settlement, err := s.LNURL.VerifyPayment(ctx, req.VerifyURL)
		if err != nil {
			log.Error("lnurl verify failed",
				slog.String("verify_url", req.VerifyURL),
				slog.Any("error", err),
			)
			return domain.VerifyResult{Status: domain.StatusError, Reason: ErrUpstreamUnavailable}
		}
		if !settlement.Settled {
			return domain.VerifyResult{Status: domain.StatusPending, Reason: ErrNotYetPaid}
		}

		// A settled callback that hands back a preimage lets us double-check
		// against the macaroon's payment hash for free.
		if settlement.Preimage != "" {
			if err := l402.VerifyPreimage(settlement.Preimage, paymentHash); err != nil {
				log.Warn("callback preimage does not match payment hash",
					slog.String("resource_id", resourceID),
				)
				return domain.VerifyResult{Status: domain.StatusRejected, Reason: err}
			}
		}
		return domain.VerifyResult{Status: domain.StatusPaid}
	}

	// 4. Creator resources, preimage path.
	if req.Preimage != "" {
		if err := l402.VerifyPreimage(req.Preimage, paymentHash); err != nil {
			return domain.VerifyResult{Status: domain.StatusRejected, Reason: err}
		}
		return domain.VerifyResult{Status: domain.StatusPaid}
	}

	// 5. Neither proof presented. Tell the client which one we need.
	return domain.VerifyResult{
		Status:           domain.StatusPending,
		Reason:           ErrNotYetPaid,
		RequiresPreimage: true,
	}
}

// checkVerifyURLDomain requires the verify URL's host to match the domain
// part of the Lightning Address, ignoring any port.
func checkVerifyURLDomain(verifyURL, payoutAddress string) error {
	_, addrHost, ok := strings.Cut(payoutAddress, "@")
	if !ok || addrHost == "" {
		return ErrVerifyURLMismatch
	}

	u, err := url.Parse(verifyURL)
	if err != nil {
		return ErrVerifyURLMismatch
	}
	if !strings.EqualFold(u.Hostname(), stripPort(addrHost)) {
		return ErrVerifyURLMismatch
	}
	return nil
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 {
		return host[:i]
	}
	return host
}
