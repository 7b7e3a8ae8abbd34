package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
)

type PublisherTokenHandler struct {
	Publishers *service.PublisherService
}

// ServeHTTP godoc
//
//	@Summary		Publisher Token Exchange
//	@Description	Exchange a publisher API key for a short-lived session JWT. The JWT is
//	@Description	required as a Bearer token on all publish endpoints.
//	@Tags			Publishers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PublisherTokenRequest	true	"publisher name and API key"
//	@Success		200		{object}	PublisherTokenResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse	"unknown publisher or wrong key"
//	@Router			/v1/publishers/token [post].
func (h *PublisherTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PublisherTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "invalid JSON body")
		return
	}
	if req.Name == "" || req.APIKey == "" {
		writeInvalidRequest(w, "name and apiKey are required")
		return
	}

	token, expiresAt, err := h.Publishers.ExchangeAPIKey(ctx, req.Name, req.APIKey)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, PublisherTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
	})
}
