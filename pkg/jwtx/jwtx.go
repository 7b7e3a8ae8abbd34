// Package jwtx is a thin wrapper around golang-jwt for the publisher session
// tokens. A single shared HS256 secret is enough here: the service both
// issues and verifies, and nothing external ever validates these tokens.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for publisher session tokens.
const DefaultSessionTTL = 1 * time.Hour

var ErrInvalidToken = errors.New("jwtx: invalid token")

// Claims are the publisher session claims.
type Claims struct {
	jwt.RegisteredClaims

	// PublisherName is the display name for the authenticated publisher.
	PublisherName string `json:"publisher_name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a publisher session.
func NewSessionClaims(publisherID, publisherName, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   publisherID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		PublisherName: publisherName,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Signer signs and verifies HS256 session tokens with a shared secret.
type Signer struct {
	secret []byte
	issuer string
}

func NewSigner(secret []byte, issuer string) *Signer {
	return &Signer{secret: secret, issuer: issuer}
}

// Sign produces a serialized HS256 JWT for the claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a serialized token, checking signature,
// expiry and issuer.
func (s *Signer) Verify(serialized string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(serialized, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
