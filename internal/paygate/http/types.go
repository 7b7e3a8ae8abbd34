package http

import (
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// DocumentResponse is a gated document with its body.
type DocumentResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	PriceSats   int64              `json:"priceSats"`
	PaymentType domain.PaymentType `json:"paymentType"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func toDocumentResponse(doc domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		Title:       doc.Title,
		Body:        doc.Body,
		PriceSats:   doc.PriceSats,
		PaymentType: doc.PaymentType(),
		CreatedAt:   doc.CreatedAt,
	}
}

// VerifyRequest is the polling body for POST /v1/verify.
type VerifyRequest struct {
	ResourceID string `json:"resourceId"`
	Macaroon   string `json:"macaroon"`
	Preimage   string `json:"preimage,omitempty"`
	VerifyURL  string `json:"verifyUrl,omitempty"`
}

// VerifyResponse reports the payment state for a polled credential.
type VerifyResponse struct {
	Paid             bool   `json:"paid"`
	RequiresPreimage bool   `json:"requiresPreimage,omitempty"`
	Error            string `json:"error,omitempty"`
}

// PublisherTokenRequest exchanges an API key for a session token.
type PublisherTokenRequest struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
}

// PublisherTokenResponse carries the issued session token.
type PublisherTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// PublishRequest is a publisher's document submission.
type PublishRequest struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	PriceSats     int64  `json:"priceSats"`
	PayoutAddress string `json:"payoutAddress,omitempty"`
}

// CompleteRequest carries the L402 credentials for publish completion. The
// Authorization header is taken by the session JWT on this route.
type CompleteRequest struct {
	Macaroon  string `json:"macaroon"`
	Preimage  string `json:"preimage,omitempty"`
	VerifyURL string `json:"verifyUrl,omitempty"`
}

// PublishPendingResponse is the 402 body for a fee-bearing submission.
type PublishPendingResponse struct {
	PendingID string           `json:"pendingId"`
	FeeSats   int64            `json:"feeSats"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Challenge domain.Challenge `json:"challenge"`
}

// HealthResponse is the body for the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Secret   string `json:"secret"`
}
