// Package l402 implements the token side of the L402 authentication scheme:
// a flat, non-delegatable bearer token binding a protected resource to a
// Lightning payment hash.
//
// The token is intentionally NOT a real macaroon. The product never needs
// delegation, attenuation or third-party caveats, only "is this the right
// resource, has it not expired, and is it unforged". A JSON payload with an
// HMAC-SHA256 signature covers all three and stays auditable.
package l402

import "errors"

var (
	// ErrMalformedToken reports a token that is structurally invalid
	// (bad base64, bad JSON, missing fields).
	ErrMalformedToken = errors.New("malformed_token")

	// ErrResourceMismatch reports a well-formed token bound to a different
	// resource. Callers should log this distinctly, it can indicate a
	// replay attempt across resources.
	ErrResourceMismatch = errors.New("resource_mismatch")

	// ErrExpired reports a token past its expiry. Benign, the client must
	// request a fresh challenge.
	ErrExpired = errors.New("token_expired")

	// ErrBadSignature reports an HMAC mismatch. Treat as a forgery attempt
	// for logging purposes, distinct from benign expiry.
	ErrBadSignature = errors.New("bad_signature")

	// ErrInvalidPreimage reports a preimage that does not hash to the
	// token's payment hash.
	ErrInvalidPreimage = errors.New("invalid_preimage")
)
