// Package signature implements the canonical payload codec for the
// HMAC-SHA256 request authentication protocol.
//
// The canonical payload for a signed request is
//
//	UTF8(timestamp) || 0x00 || UTF8(nonce) || 0x00 || body
//
// where timestamp and nonce are the exact strings carried in the request
// headers and body is the raw request body with no re-encoding. The NUL
// separators keep distinct (timestamp, nonce, body) triples from
// concatenating to the same byte string, so a signature for one triple can
// never validate another.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// DigestLength is the length of a hex-encoded HMAC-SHA256 digest.
const DigestLength = 64

// Payload builds the canonical byte sequence covered by a signature.
// The timestamp and nonce must be the exact strings transmitted in headers,
// not reformatted versions.
func Payload(timestamp, nonce string, body []byte) []byte {
	p := make([]byte, 0, len(timestamp)+len(nonce)+len(body)+2)
	p = append(p, timestamp...)
	p = append(p, 0x00)
	p = append(p, nonce...)
	p = append(p, 0x00)
	p = append(p, body...)
	return p
}

// Sign computes the HMAC-SHA256 digest of the canonical payload and returns
// it as 64 lowercase hex characters.
func Sign(secret []byte, timestamp, nonce string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(Payload(timestamp, nonce, body))
	return hex.EncodeToString(mac.Sum(nil))
}
