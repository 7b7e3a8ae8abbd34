package domain

import "time"

// PaymentType selects which settlement-verification strategy applies to a
// resource. It is derived purely from whether a payout address is set and is
// threaded through the challenge so clients know which proof to collect.
type PaymentType string

const (
	// PaymentTypePlatform means the invoice comes from our own Lightning
	// node and settlement is checked by direct node lookup.
	PaymentTypePlatform PaymentType = "platform"

	// PaymentTypeCreator means the invoice comes from the creator's
	// Lightning Address and settlement is checked via the LNURL verify
	// callback or a client-supplied preimage.
	PaymentTypeCreator PaymentType = "creator"
)

// Document is a library entry. PriceSats == 0 means the document is public
// and no gate applies.
type Document struct {
	ID            string
	Title         string
	Body          string
	PriceSats     int64
	PayoutAddress string // Lightning Address; empty means platform-custodied
	PublisherID   string // empty for platform-seeded documents
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentType derives the settlement strategy for this document.
func (d Document) PaymentType() PaymentType {
	if d.PayoutAddress != "" {
		return PaymentTypeCreator
	}
	return PaymentTypePlatform
}

// Free reports whether the document is served without any gate.
func (d Document) Free() bool { return d.PriceSats == 0 }

// DocumentSummary is the public listing view. Bodies of paid documents are
// never exposed here.
type DocumentSummary struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	PriceSats   int64       `json:"priceSats"`
	PaymentType PaymentType `json:"paymentType"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Summary returns the listing view of the document.
func (d Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:          d.ID,
		Title:       d.Title,
		PriceSats:   d.PriceSats,
		PaymentType: d.PaymentType(),
		CreatedAt:   d.CreatedAt,
	}
}
