package domain

import "time"

// Challenge is everything the client needs to settle an unpaid access
// attempt: the minted macaroon, the invoice to pay and the metadata to pick
// the right proof path afterwards.
type Challenge struct {
	ResourceID     string      `json:"resourceId"`
	Macaroon       string      `json:"macaroon"`
	PaymentHash    string      `json:"paymentHash"` // lowercase hex
	PaymentRequest string      `json:"paymentRequest"`
	ExpiresAt      int64       `json:"expiresAt"` // unix seconds, token expiry
	PriceSats      int64       `json:"priceSats"`
	PaymentType    PaymentType `json:"paymentType"`

	// VerifyURL is the LNURL verify callback (LUD-21) when the creator's
	// wallet supports it. Empty for platform invoices.
	VerifyURL string `json:"verifyUrl,omitempty"`
}

// VerifyStatus is the terminal state of a single verification attempt.
type VerifyStatus string

const (
	// StatusPaid means the underlying invoice is settled.
	StatusPaid VerifyStatus = "paid"

	// StatusPending means the invoice is not settled yet. Legitimate and
	// frequent; clients poll until it flips.
	StatusPending VerifyStatus = "pending"

	// StatusRejected means the credentials are bad and will never become
	// good. The client must restart the flow.
	StatusRejected VerifyStatus = "rejected"

	// StatusError means an upstream (node or LNURL endpoint) failed. Safe
	// to retry; never conflated with pending.
	StatusError VerifyStatus = "error"
)

// VerifyResult is the outcome of one verification attempt. Reason carries
// the taxonomy sentinel (wrapped around any transport detail) for rejected
// and error outcomes; it is nil for paid and plain pending.
type VerifyResult struct {
	Status           VerifyStatus
	Reason           error
	RequiresPreimage bool // creator resource with no proof supplied at all
}

// VerifyRequest is the client-presented material for one verification
// attempt, independent of which endpoint it arrived through.
type VerifyRequest struct {
	Macaroon  string
	Preimage  string // hex, optional
	VerifyURL string // LNURL verify callback, optional
}

// Invoice is what an invoice source hands back: the bolt11 payment request
// plus its payment hash, and the verify callback when the issuer supports it.
type Invoice struct {
	PaymentRequest string
	PaymentHash    string // lowercase hex
	VerifyURL      string
}

// PendingPublish is a transient record for a paid publish: the submitted
// document held back until the listing-fee invoice settles. Expired records
// are deleted by housekeeping.
type PendingPublish struct {
	ID            string
	PublisherID   string
	Title         string
	Body          string
	PriceSats     int64
	PayoutAddress string
	FeeSats       int64
	ExpiresAt     time.Time
	CreatedAt     time.Time
}
