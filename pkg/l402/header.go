package l402

import (
	"fmt"
	"strings"
)

// Scheme is the authentication scheme name used in HTTP headers.
const Scheme = "L402"

// Credentials are the client-presented half of the protocol: the macaroon
// from a prior challenge plus an optional payment preimage.
type Credentials struct {
	Macaroon string
	Preimage string // hex, may be empty while the payment is in flight
}

// ChallengeHeader builds the WWW-Authenticate value for a 402 response:
//
//	L402 macaroon="<token>", invoice="<bolt11>"
func ChallengeHeader(macaroon, invoice string) string {
	return fmt.Sprintf(`%s macaroon=%q, invoice=%q`, Scheme, macaroon, invoice)
}

// ParseAuthorization parses an Authorization header of the form
// "L402 <macaroon>:<preimage>". The preimage may be the empty string when the
// client has not yet paid. Returns ok=false when the header is absent or not
// an L402 credential at all; a present-but-empty macaroon is not ok either.
func ParseAuthorization(header string) (Credentials, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Credentials{}, false
	}

	prefix := Scheme + " "
	if !strings.HasPrefix(header, prefix) {
		// Legacy clients send the LSAT scheme name with the same format.
		if !strings.HasPrefix(header, "LSAT ") {
			return Credentials{}, false
		}
		header = prefix + strings.TrimPrefix(header, "LSAT ")
	}

	rest := strings.TrimSpace(header[len(prefix):])
	mac, preimage, _ := strings.Cut(rest, ":")
	if mac == "" {
		return Credentials{}, false
	}

	return Credentials{Macaroon: mac, Preimage: strings.TrimSpace(preimage)}, true
}
