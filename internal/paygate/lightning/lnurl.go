package lightning

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

// LNURLConfig configures the LNURL-pay client.
type LNURLConfig struct {
	// Network selects the chain parameters used when decoding the bolt11
	// invoices creators' wallets hand back ("mainnet", "testnet", ...).
	Network string

	// Timeout bounds each HTTP round-trip.
	Timeout time.Duration

	// AllowInsecure permits plain-http endpoints. Tests only.
	AllowInsecure bool
}

// LNURLClient implements AddressClient over the LNURL-pay (LUD-06) and
// verify (LUD-21) protocols.
type LNURLClient struct {
	http          *http.Client
	network       string
	allowInsecure bool
}

// payResponse is the LUD-06 first-step response from the wallet service.
type payResponse struct {
	Callback    string `json:"callback"`
	MinSendable int64  `json:"minSendable"` // millisats
	MaxSendable int64  `json:"maxSendable"` // millisats
	Tag         string `json:"tag"`
	Status      string `json:"status,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// invoiceResponse is the LUD-06 callback response carrying the invoice.
type invoiceResponse struct {
	PR     string `json:"pr"`
	Verify string `json:"verify,omitempty"` // LUD-21
	Status string `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// verifyResponse is the LUD-21 verify-callback response.
type verifyResponse struct {
	Status   string `json:"status"`
	Settled  bool   `json:"settled"`
	Preimage string `json:"preimage,omitempty"`
	PR       string `json:"pr,omitempty"`
}

func NewLNURLClient(cfg LNURLConfig) *LNURLClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LNURLClient{
		http:          &http.Client{Timeout: timeout},
		network:       cfg.Network,
		allowInsecure: cfg.AllowInsecure,
	}
}

// CreateInvoice resolves a Lightning Address, requests an invoice for
// amountSats from the creator's wallet service and decodes the bolt11 to
// recover the real payment hash. The requested amount is cross-checked
// against the invoice amount so a misbehaving wallet cannot under-invoice.
func (c *LNURLClient) CreateInvoice(ctx context.Context, address string, amountSats int64, memo string) (domain.Invoice, error) {
	endpoint, err := c.resolveAddress(address)
	if err != nil {
		return domain.Invoice{}, err
	}

	var pay payResponse
	if err := c.getJSON(ctx, endpoint, &pay); err != nil {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay resolve: %w", err)
	}
	if pay.Status == "ERROR" {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay resolve: %s", pay.Reason)
	}
	if pay.Tag != "payRequest" || pay.Callback == "" {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay resolve: not a payRequest endpoint")
	}

	msat := amountSats * 1000
	if msat < pay.MinSendable || (pay.MaxSendable > 0 && msat > pay.MaxSendable) {
		return domain.Invoice{}, fmt.Errorf(
			"lnurl-pay: amount %d msat outside sendable range [%d, %d]",
			msat, pay.MinSendable, pay.MaxSendable)
	}

	cb, err := url.Parse(pay.Callback)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay: bad callback url: %w", err)
	}
	q := cb.Query()
	q.Set("amount", fmt.Sprintf("%d", msat))
	if memo != "" {
		q.Set("comment", memo)
	}
	cb.RawQuery = q.Encode()

	var invResp invoiceResponse
	if err := c.getJSON(ctx, cb.String(), &invResp); err != nil {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay callback: %w", err)
	}
	if invResp.Status == "ERROR" {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay callback: %s", invResp.Reason)
	}
	if invResp.PR == "" {
		return domain.Invoice{}, fmt.Errorf("lnurl-pay callback: no invoice returned")
	}

	decoded, err := decodeInvoice(invResp.PR, c.network)
	if err != nil {
		return domain.Invoice{}, err
	}
	if decoded.MilliSat != 0 && decoded.MilliSat != msat {
		return domain.Invoice{}, fmt.Errorf(
			"lnurl-pay: invoice amount %d msat does not match requested %d msat",
			decoded.MilliSat, msat)
	}

	return domain.Invoice{
		PaymentRequest: invResp.PR,
		PaymentHash:    decoded.PaymentHash,
		VerifyURL:      invResp.Verify,
	}, nil
}

// VerifyPayment polls a LUD-21 verify URL and reports settlement.
func (c *LNURLClient) VerifyPayment(ctx context.Context, verifyURL string) (Settlement, error) {
	if err := c.checkScheme(verifyURL); err != nil {
		return Settlement{}, err
	}

	var resp verifyResponse
	if err := c.getJSON(ctx, verifyURL, &resp); err != nil {
		return Settlement{}, fmt.Errorf("lnurl verify: %w", err)
	}
	if resp.Status == "ERROR" {
		return Settlement{}, fmt.Errorf("lnurl verify: service reported error")
	}

	return Settlement{
		Settled:  resp.Settled,
		Preimage: strings.ToLower(resp.Preimage),
	}, nil
}

// resolveAddress turns "name@host" into the LUD-16 well-known endpoint.
func (c *LNURLClient) resolveAddress(address string) (string, error) {
	name, host, ok := strings.Cut(strings.TrimSpace(address), "@")
	if !ok || name == "" || host == "" {
		return "", fmt.Errorf("invalid lightning address %q", address)
	}

	scheme := "https"
	if c.allowInsecure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/.well-known/lnurlp/%s", scheme, host, url.PathEscape(name)), nil
}

func (c *LNURLClient) checkScheme(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("bad verify url: %w", err)
	}
	if u.Scheme != "https" && !c.allowInsecure {
		return fmt.Errorf("verify url must be https")
	}
	return nil
}

func (c *LNURLClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
