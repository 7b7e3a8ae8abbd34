package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
)

type VerifyHandler struct {
	Store    store.Store
	Verifier *service.VerifyService
}

// ServeHTTP godoc
//
//	@Summary		Verify Payment
//	@Description	Poll whether the invoice behind a macaroon has settled. Idempotent;
//	@Description	clients call this until paid flips to true or the response turns 401.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VerifyRequest	true	"macaroon, resourceId, optional preimage / verifyUrl"
//	@Success		200		{object}	VerifyResponse	"paid"
//	@Failure		401		{object}	ErrorResponse	"credentials rejected"
//	@Failure		402		{object}	VerifyResponse	"not settled yet"
//	@Failure		404		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/v1/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "invalid JSON body")
		return
	}
	if req.ResourceID == "" || req.Macaroon == "" {
		writeInvalidRequest(w, "resourceId and macaroon are required")
		return
	}

	payoutAddress, err := h.resolvePayoutAddress(r, req.ResourceID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.Verifier.VerifyPayment(ctx, req.ResourceID, payoutAddress, domain.VerifyRequest{
		Macaroon:  req.Macaroon,
		Preimage:  req.Preimage,
		VerifyURL: req.VerifyURL,
	})

	switch result.Status {
	case domain.StatusPaid:
		httpx.WriteJSON(w, http.StatusOK, VerifyResponse{Paid: true})
	case domain.StatusPending:
		httpx.WriteJSON(w, http.StatusPaymentRequired, VerifyResponse{
			Paid:             false,
			RequiresPreimage: result.RequiresPreimage,
			Error:            "not_yet_paid",
		})
	default:
		writeError(ctx, w, result.Reason)
	}
}

// resolvePayoutAddress finds the resource the macaroon claims to cover so the
// verifier knows which settlement path applies. Documents and pending
// publishes share the id space; pending publishes are always
// platform-custodied listing fees.
func (h *VerifyHandler) resolvePayoutAddress(r *http.Request, resourceID string) (string, error) {
	ctx := r.Context()

	doc, err := h.Store.Documents().GetDocumentByID(ctx, resourceID)
	if err == nil {
		return doc.PayoutAddress, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	if _, err := h.Store.PendingPublishes().GetPendingPublishByID(ctx, resourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", service.ErrDocumentNotFound
		}
		return "", err
	}
	return "", nil
}
