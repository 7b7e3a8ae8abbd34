package lightning

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"

	"github.com/lightningnetwork/lnd/lnrpc"
	"github.com/lightningnetwork/lnd/macaroons"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/macaroon.v2"
)

const defaultInvoiceExpirySeconds = 3600

// LNDConfig holds connection configuration for the platform node.
type LNDConfig struct {
	Host         string
	TLSCertPath  string
	MacaroonPath string

	// Timeout bounds every node call. A hung node must not hold a request
	// open indefinitely.
	Timeout time.Duration
}

// LNDClient implements NodeClient against an LND node over gRPC.
type LNDClient struct {
	ln      lnrpc.LightningClient
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewLNDClient dials the node with TLS and macaroon credentials.
func NewLNDClient(cfg LNDConfig) (*LNDClient, error) {
	creds, err := credentials.NewClientTLSFromFile(cfg.TLSCertPath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS cert: %w", err)
	}

	macBytes, err := os.ReadFile(cfg.MacaroonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read macaroon: %w", err)
	}

	mac := &macaroon.Macaroon{}
	if err := mac.UnmarshalBinary(macBytes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal macaroon: %w", err)
	}

	macCreds, err := macaroons.NewMacaroonCredential(mac)
	if err != nil {
		return nil, fmt.Errorf("failed to create macaroon credential: %w", err)
	}

	conn, err := grpc.Dial(cfg.Host,
		grpc.WithTransportCredentials(creds),
		grpc.WithPerRPCCredentials(macCreds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial LND: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &LNDClient{
		ln:      lnrpc.NewLightningClient(conn),
		conn:    conn,
		timeout: timeout,
	}, nil
}

// Close closes the underlying connection.
func (c *LNDClient) Close() error {
	return c.conn.Close()
}

// CreateInvoice adds an invoice on the platform node and returns its bolt11
// string with the node-reported payment hash.
func (c *LNDClient) CreateInvoice(ctx context.Context, amountSats int64, memo string) (domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.ln.AddInvoice(ctx, &lnrpc.Invoice{
		Memo:   memo,
		Value:  amountSats,
		Expiry: defaultInvoiceExpirySeconds,
	})
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("add invoice: %w", err)
	}

	return domain.Invoice{
		PaymentRequest: resp.PaymentRequest,
		PaymentHash:    hex.EncodeToString(resp.RHash),
	}, nil
}

// LookupInvoice queries the node by payment hash and reports settlement.
func (c *LNDClient) LookupInvoice(ctx context.Context, paymentHash string) (bool, error) {
	hashBytes, err := hex.DecodeString(strings.ToLower(paymentHash))
	if err != nil {
		return false, fmt.Errorf("invalid payment hash: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	inv, err := c.ln.LookupInvoice(ctx, &lnrpc.PaymentHash{RHash: hashBytes})
	if err != nil {
		return false, fmt.Errorf("lookup invoice: %w", err)
	}

	return inv.State == lnrpc.Invoice_SETTLED, nil
}
