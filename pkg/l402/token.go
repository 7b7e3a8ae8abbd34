package l402

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Token is the decoded bearer credential. It is readable by the client once
// decoded, so it must never carry anything beyond identifiers the client
// already knows.
type Token struct {
	ResourceID  string `json:"resourceId"`
	PaymentHash string `json:"paymentHash"` // lowercase hex SHA-256
	ExpiresAt   int64  `json:"expiresAt"`   // unix seconds
	Sig         string `json:"sig"`         // base64url HMAC-SHA256
}

// Codec mints and verifies tokens with a single server-held secret. The
// secret is read-only process-wide configuration; a Codec is safe for
// concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a Codec keyed by secret.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// NewCodecAt is like NewCodec but with an injectable clock, for tests.
func NewCodecAt(secret []byte, now func() time.Time) *Codec {
	return &Codec{secret: secret, now: now}
}

// Mint creates a serialized token binding resourceID to paymentHash for ttl.
// Pure computation, no I/O. The payment hash is normalised to lowercase hex.
func (c *Codec) Mint(resourceID, paymentHash string, ttl time.Duration) string {
	t := Token{
		ResourceID:  resourceID,
		PaymentHash: strings.ToLower(paymentHash),
		ExpiresAt:   c.now().Add(ttl).Unix(),
	}
	t.Sig = c.sign(t)

	raw, _ := json.Marshal(t) // struct of scalars, cannot fail
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a serialized token without checking signature or expiry.
// Any structural problem yields ErrMalformedToken.
func (c *Codec) Decode(serialized string) (Token, error) {
	raw, err := base64.RawURLEncoding.DecodeString(serialized)
	if err != nil {
		// Tolerate standard/padded encodings from older clients.
		raw, err = base64.StdEncoding.DecodeString(serialized)
		if err != nil {
			return Token{}, fmt.Errorf("%w: not base64", ErrMalformedToken)
		}
	}

	var t Token
	if err := json.Unmarshal(raw, &t); err != nil {
		return Token{}, fmt.Errorf("%w: not json", ErrMalformedToken)
	}
	if t.ResourceID == "" || t.PaymentHash == "" || t.ExpiresAt == 0 || t.Sig == "" {
		return Token{}, fmt.Errorf("%w: missing field", ErrMalformedToken)
	}
	return t, nil
}

// Verify decodes the token and checks resource binding, expiry and signature,
// in that order. On success it returns the bound payment hash for the caller
// to act on. The signature comparison is constant-time.
func (c *Codec) Verify(serialized, expectedResourceID string) (paymentHash string, err error) {
	t, err := c.Decode(serialized)
	if err != nil {
		return "", err
	}

	if t.ResourceID != expectedResourceID {
		return "", ErrResourceMismatch
	}
	if t.ExpiresAt < c.now().Unix() {
		return "", ErrExpired
	}

	want, err := base64.RawURLEncoding.DecodeString(t.Sig)
	if err != nil {
		return "", ErrBadSignature
	}
	got, err := base64.RawURLEncoding.DecodeString(c.sign(t))
	if err != nil || !hmac.Equal(got, want) {
		return "", ErrBadSignature
	}

	return strings.ToLower(t.PaymentHash), nil
}

// sign computes HMAC-SHA256 over the canonical field concatenation. The
// signature covers resource id, payment hash and expiry; nothing else exists
// to cover.
func (c *Codec) sign(t Token) string {
	mac := hmac.New(sha256.New, c.secret)
	fmt.Fprintf(mac, "%s:%s:%d", t.ResourceID, strings.ToLower(t.PaymentHash), t.ExpiresAt)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyPreimage checks that preimageHex is the preimage of paymentHashHex.
// The preimage is hex-decoded to raw bytes before hashing; hashing the hex
// string itself would fail on every legitimate payment.
func VerifyPreimage(preimageHex, paymentHashHex string) error {
	raw, err := hex.DecodeString(strings.TrimSpace(preimageHex))
	if err != nil || len(raw) == 0 {
		return ErrInvalidPreimage
	}

	sum := sha256.Sum256(raw)
	if hex.EncodeToString(sum[:]) != strings.ToLower(strings.TrimSpace(paymentHashHex)) {
		return ErrInvalidPreimage
	}
	return nil
}
