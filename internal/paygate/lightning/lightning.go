// Package lightning holds the invoice-issuing and payment-checking
// collaborators the payment gate depends on: the platform LND node and the
// LNURL-pay client for creator Lightning Addresses. The gate consumes these
// through narrow interfaces so verification logic stays testable without
// network I/O.
package lightning

import (
	"context"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

// NodeClient is the platform-custodied invoice source: our own Lightning
// node, which both issues invoices and answers settlement lookups.
type NodeClient interface {
	// CreateInvoice asks the node for a bolt11 invoice of amountSats.
	CreateInvoice(ctx context.Context, amountSats int64, memo string) (domain.Invoice, error)

	// LookupInvoice reports whether the invoice identified by the
	// lowercase-hex payment hash has settled. A transport or node error
	// is returned as-is; callers must not read it as "unpaid".
	LookupInvoice(ctx context.Context, paymentHash string) (settled bool, err error)

	Close() error
}

// AddressClient is the creator-custodied invoice source: LNURL-pay against a
// third party's Lightning Address. Settlement is attested by the LUD-21
// verify callback, never by us.
type AddressClient interface {
	// CreateInvoice resolves the Lightning Address and requests an
	// invoice for amountSats from the creator's wallet service.
	CreateInvoice(ctx context.Context, address string, amountSats int64, memo string) (domain.Invoice, error)

	// VerifyPayment polls a LUD-21 verify callback URL.
	VerifyPayment(ctx context.Context, verifyURL string) (Settlement, error)
}

// Settlement is the result of a verify-callback poll.
type Settlement struct {
	Settled  bool
	Preimage string // hex, set once settled when the service shares it
}
