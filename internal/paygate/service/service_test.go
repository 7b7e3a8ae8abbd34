package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/lightning"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/internal/paygate/store/drivers/sqlite"
	"github.com/aussiebroadwan/paygate/pkg/cryptox"
	"github.com/aussiebroadwan/paygate/pkg/l402"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "paygate-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// stubNode is a canned platform node. Settled invoices are keyed by payment
// hash.
type stubNode struct {
	invoice    domain.Invoice
	createErr  error
	settled    map[string]bool
	lookupErr  error
	lookups    int
	lastMemo   string
	lastAmount int64
}

func (n *stubNode) CreateInvoice(_ context.Context, amountSats int64, memo string) (domain.Invoice, error) {
	n.lastAmount = amountSats
	n.lastMemo = memo
	return n.invoice, n.createErr
}

func (n *stubNode) LookupInvoice(_ context.Context, paymentHash string) (bool, error) {
	n.lookups++
	if n.lookupErr != nil {
		return false, n.lookupErr
	}
	return n.settled[paymentHash], nil
}

func (n *stubNode) Close() error { return nil }

// stubLNURL is a canned creator wallet service.
type stubLNURL struct {
	invoice     domain.Invoice
	createErr   error
	settlement  lightning.Settlement
	verifyErr   error
	verifyCalls int
	lastAddress string
}

func (c *stubLNURL) CreateInvoice(_ context.Context, address string, amountSats int64, memo string) (domain.Invoice, error) {
	c.lastAddress = address
	return c.invoice, c.createErr
}

func (c *stubLNURL) VerifyPayment(_ context.Context, verifyURL string) (lightning.Settlement, error) {
	c.verifyCalls++
	if c.verifyErr != nil {
		return lightning.Settlement{}, c.verifyErr
	}
	return c.settlement, nil
}

var _ lightning.NodeClient = (*stubNode)(nil)
var _ lightning.AddressClient = (*stubLNURL)(nil)

func testCodec() *l402.Codec {
	return l402.NewCodec([]byte("service-test-secret"))
}

func newServiceTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// testPreimage returns a valid (preimage, paymentHash) hex pair.
func testPreimage(t *testing.T, seed string) (preimage, paymentHash string) {
	t.Helper()

	raw := sha256.Sum256([]byte(seed))
	sum := sha256.Sum256(raw[:])
	return hex.EncodeToString(raw[:]), hex.EncodeToString(sum[:])
}

func mintFor(codec *l402.Codec, resourceID, paymentHash string) string {
	return codec.Mint(resourceID, paymentHash, time.Hour)
}
