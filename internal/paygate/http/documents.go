package http

import (
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
)

type DocumentsHandler struct {
	Documents *service.DocumentService
	Gate      *service.GateService
}

// HandleList godoc
//
//	@Summary		List Documents
//	@Description	Public listing of the document library: id, title, price and payment type.
//	@Description	Bodies of paid documents are never included here.
//	@Tags			Documents
//	@Produce		json
//	@Success		200	{array}		domain.DocumentSummary
//	@Failure		500	{object}	ErrorResponse
//	@Router			/v1/documents [get].
func (h *DocumentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.Documents.ListDocuments(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summaries)
}

// HandleGet godoc
//
//	@Summary		Get Document
//	@Description	Retrieve a document. Free documents are served directly. Paid documents
//	@Description	require L402 credentials ("Authorization: L402 <macaroon>:<preimage>");
//	@Description	without them the response is a 402 challenge carrying a Lightning invoice.
//	@Tags			Documents
//	@Produce		json
//	@Param			id			path		string	true	"Document ID"
//	@Param			verifyUrl	query		string	false	"LNURL verify callback for creator-paid documents"
//	@Success		200			{object}	DocumentResponse
//	@Failure		401			{object}	ErrorResponse	"rejected credentials"
//	@Failure		402			{object}	domain.Challenge	"payment required"
//	@Failure		404			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse	"verification upstream unavailable"
//	@Router			/v1/documents/{id} [get].
func (h *DocumentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.Documents.GetDocument(ctx, r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	decision, err := h.Gate.Authorize(ctx, service.GatedResource{
		ID:            doc.ID,
		PriceSats:     doc.PriceSats,
		PayoutAddress: doc.PayoutAddress,
	}, credentialsFromRequest(r), service.ReaccessTTL)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	switch {
	case decision.Grant:
		httpx.WriteJSON(w, http.StatusOK, toDocumentResponse(doc))
	case decision.Challenge != nil:
		writeChallenge(w, *decision.Challenge)
	default:
		writeError(ctx, w, decision.Result.Reason)
	}
}

// HandleChallenge godoc
//
//	@Summary		Request Payment Challenge
//	@Description	Explicitly mint a fresh L402 challenge for a paid document without
//	@Description	attempting retrieval. Free documents answer 400.
//	@Tags			Documents
//	@Produce		json
//	@Param			id	path		string	true	"Document ID"
//	@Success		402	{object}	domain.Challenge
//	@Failure		400	{object}	ErrorResponse	"document is free"
//	@Failure		404	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse	"invoice source failed"
//	@Router			/v1/documents/{id}/challenge [post].
func (h *DocumentsHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.Documents.GetDocument(ctx, r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	challenge, err := h.Gate.Challenges.BuildChallenge(ctx, doc.ID, doc.PriceSats, doc.PayoutAddress, service.ReaccessTTL)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeChallenge(w, challenge)
}
