package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
	"github.com/aussiebroadwan/paygate/pkg/l402"
)

type PublishHandler struct {
	Publish *service.PublishService
}

// HandleSubmit godoc
//
//	@Summary		Submit Document
//	@Description	Submit a document for publication. Zero-fee submissions publish
//	@Description	immediately with 201. Fee-bearing submissions answer 402 with a
//	@Description	challenge for the listing fee; complete with POST /v1/publish/{id}/complete.
//	@Tags			Publishing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PublishRequest	true	"document submission"
//	@Success		201		{object}	DocumentResponse			"published immediately"
//	@Failure		402		{object}	PublishPendingResponse	"listing fee due"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse	"invoice source failed"
//	@Security		BearerAuth
//	@Router			/v1/publish [post].
func (h *PublishHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publisherID := httpx.PublisherIDFromCtx(ctx)

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "invalid JSON body")
		return
	}

	outcome, err := h.Publish.SubmitPublish(ctx, publisherID, service.PublishInput{
		Title:         req.Title,
		Body:          req.Body,
		PriceSats:     req.PriceSats,
		PayoutAddress: req.PayoutAddress,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if outcome.Document != nil {
		httpx.WriteJSON(w, http.StatusCreated, toDocumentResponse(*outcome.Document))
		return
	}

	w.Header().Set("WWW-Authenticate", l402.ChallengeHeader(outcome.Challenge.Macaroon, outcome.Challenge.PaymentRequest))
	httpx.WriteJSON(w, http.StatusPaymentRequired, PublishPendingResponse{
		PendingID: outcome.Pending.ID,
		FeeSats:   outcome.Pending.FeeSats,
		ExpiresAt: outcome.Pending.ExpiresAt,
		Challenge: *outcome.Challenge,
	})
}

// HandleComplete godoc
//
//	@Summary		Complete Publication
//	@Description	Prove the listing fee settled and promote the pending submission to a
//	@Description	live document. The session JWT occupies the Authorization header, so the
//	@Description	L402 macaroon rides in the JSON body instead. An empty body re-issues
//	@Description	the 402 challenge.
//	@Tags			Publishing
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Pending publish ID"
//	@Param			request	body		CompleteRequest	false	"macaroon and optional preimage"
//	@Success		201		{object}	DocumentResponse
//	@Failure		401		{object}	ErrorResponse	"credentials rejected"
//	@Failure		402		{object}	ErrorResponse	"fee not settled yet"
//	@Failure		404		{object}	ErrorResponse	"unknown, expired or foreign pending id"
//	@Failure		503		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/publish/{id}/complete [post].
func (h *PublishHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publisherID := httpx.PublisherIDFromCtx(ctx)

	var creds *domain.VerifyRequest
	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Macaroon != "" {
		creds = &domain.VerifyRequest{
			Macaroon:  req.Macaroon,
			Preimage:  req.Preimage,
			VerifyURL: req.VerifyURL,
		}
	}

	doc, decision, err := h.Publish.CompletePublish(ctx, publisherID, r.PathValue("id"), creds)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	switch {
	case decision.Grant:
		httpx.WriteJSON(w, http.StatusCreated, toDocumentResponse(doc))
	case decision.Challenge != nil:
		writeChallenge(w, *decision.Challenge)
	default:
		writeError(ctx, w, decision.Result.Reason)
	}
}
