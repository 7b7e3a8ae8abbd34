package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

// GatedResource is the payment-relevant view of anything the gate protects.
// Documents and pending publishes both reduce to it, so one gate serves
// every route.
type GatedResource struct {
	ID            string
	PriceSats     int64
	PayoutAddress string
}

// Decision is the gate's verdict on a request.
type Decision struct {
	// Grant is true when the caller may have the resource.
	Grant bool

	// Challenge is set when the caller holds no credentials and must pay;
	// the HTTP layer serves it with a 402.
	Challenge *domain.Challenge

	// Result carries the verification outcome when credentials were
	// presented.
	Result domain.VerifyResult
}

// GateService is the access gate in front of paid resources.
type GateService struct {
	Challenges *ChallengeService
	Verifier   *VerifyService
}

// Authorize decides whether the caller gets the resource. creds is nil when
// the request carried no parseable L402 credentials.
func (s *GateService) Authorize(
	ctx context.Context,
	res GatedResource,
	creds *domain.VerifyRequest,
	ttl time.Duration,
) (Decision, error) {
	// 1. Free resources are never gated.
	if res.PriceSats <= 0 {
		return Decision{Grant: true, Result: domain.VerifyResult{Status: domain.StatusPaid}}, nil
	}

	// 2. No credentials: mint a fresh challenge.
	if creds == nil {
		challenge, err := s.Challenges.BuildChallenge(ctx, res.ID, res.PriceSats, res.PayoutAddress, ttl)
		if err != nil {
			return Decision{}, err
		}
		return Decision{
			Challenge: &challenge,
			Result:    domain.VerifyResult{Status: domain.StatusPending, Reason: ErrNotYetPaid},
		}, nil
	}

	// 3. Credentials presented: verify payment. The client keeps its
	// existing macaroon and invoice while pending, so no new challenge is
	// minted here.
	result := s.Verifier.VerifyPayment(ctx, res.ID, res.PayoutAddress, *creds)
	return Decision{Grant: result.Status == domain.StatusPaid, Result: result}, nil
}
