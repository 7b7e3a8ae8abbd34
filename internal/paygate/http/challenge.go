package http

import (
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
	"github.com/aussiebroadwan/paygate/pkg/l402"
)

// writeChallenge serves a 402 with the L402 WWW-Authenticate header and the
// challenge body. Never cached; every challenge carries a live invoice.
func writeChallenge(w http.ResponseWriter, challenge domain.Challenge) {
	w.Header().Set("WWW-Authenticate", l402.ChallengeHeader(challenge.Macaroon, challenge.PaymentRequest))
	httpx.WriteJSON(w, http.StatusPaymentRequired, challenge)
}

// credentialsFromRequest pulls L402 credentials off the request. The
// macaroon and preimage ride in the Authorization header; the optional LNURL
// verify callback rides in the verifyUrl query parameter. Returns nil when
// the request carries no parseable credentials.
func credentialsFromRequest(r *http.Request) *domain.VerifyRequest {
	creds, ok := l402.ParseAuthorization(r.Header.Get("Authorization"))
	if !ok {
		return nil
	}
	return &domain.VerifyRequest{
		Macaroon:  creds.Macaroon,
		Preimage:  creds.Preimage,
		VerifyURL: r.URL.Query().Get("verifyUrl"),
	}
}
