package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
	"github.com/aussiebroadwan/paygate/pkg/l402"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

// taxonomy is the single mapping from sentinel errors to wire errors. Every
// handler goes through writeError so a given failure always produces the
// same status and code, whichever route it surfaced on.
type wireError struct {
	status int
	code   string
	desc   string
}

func classify(err error) wireError {
	switch {
	case errors.Is(err, l402.ErrMalformedToken):
		return wireError{http.StatusUnauthorized, "malformed_token", "The macaroon could not be decoded"}
	case errors.Is(err, l402.ErrResourceMismatch):
		return wireError{http.StatusUnauthorized, "resource_mismatch", "The macaroon was minted for a different resource"}
	case errors.Is(err, l402.ErrExpired):
		return wireError{http.StatusUnauthorized, "token_expired", "The macaroon has expired; request a new challenge"}
	case errors.Is(err, l402.ErrBadSignature):
		return wireError{http.StatusUnauthorized, "bad_signature", "The macaroon signature is invalid"}
	case errors.Is(err, l402.ErrInvalidPreimage):
		return wireError{http.StatusUnauthorized, "invalid_preimage", "The preimage does not hash to the invoice payment hash"}
	case errors.Is(err, service.ErrNotYetPaid):
		return wireError{http.StatusPaymentRequired, "not_yet_paid", "The invoice has not settled yet"}
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return wireError{http.StatusServiceUnavailable, "upstream_unavailable", "Payment verification is temporarily unavailable; retry"}
	case errors.Is(err, service.ErrInvoiceCreation):
		return wireError{http.StatusBadGateway, "invoice_creation_failed", "Could not obtain an invoice for this resource"}
	case errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrPendingPublishNotFound),
		errors.Is(err, service.ErrPublisherMismatch):
		return wireError{http.StatusNotFound, "not_found", "Resource not found"}
	case errors.Is(err, service.ErrInvalidClient):
		return wireError{http.StatusUnauthorized, "invalid_client", "Unknown publisher or wrong API key"}
	case errors.Is(err, service.ErrInvalidPublishRequest),
		errors.Is(err, service.ErrResourceFree),
		errors.Is(err, service.ErrVerifyURLMismatch):
		return wireError{http.StatusBadRequest, "invalid_request", err.Error()}
	default:
		return wireError{http.StatusInternalServerError, "server_error", "Internal error"}
	}
}

// writeError maps err through the taxonomy and writes the response. Logging
// severity follows the nature of the failure: steady-state 402s are silent,
// signature failures are logged as forgery attempts, everything 5xx is an
// error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)
	we := classify(err)

	switch {
	case we.code == "not_yet_paid":
		// Expected while the client polls; not an error.
	case we.code == "bad_signature":
		log.Warn("macaroon forgery attempt", slog.Any("error", err))
	case we.status >= 500:
		log.Error("request failed", slog.String("code", we.code), slog.Any("error", err))
	default:
		log.Info("request rejected", slog.String("code", we.code))
	}

	httpx.WriteJSON(w, we.status, ErrorResponse{
		Error:            we.code,
		ErrorDescription: we.desc,
	})
}

func writeInvalidRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}
