package lightning

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

// ErrNodeNotConfigured is returned by DisabledNodeClient for every call.
var ErrNodeNotConfigured = errors.New("platform lightning node not configured")

// DisabledNodeClient stands in when no platform node is configured. Platform
// resources fail their challenge and verification calls; creator resources
// are unaffected.
type DisabledNodeClient struct{}

func (DisabledNodeClient) CreateInvoice(context.Context, int64, string) (domain.Invoice, error) {
	return domain.Invoice{}, ErrNodeNotConfigured
}

func (DisabledNodeClient) LookupInvoice(context.Context, string) (bool, error) {
	return false, ErrNodeNotConfigured
}

func (DisabledNodeClient) Close() error { return nil }
