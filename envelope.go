package sigil

import "net/http"

// Authentication header names. Lookup on receipt is case-insensitive; these
// exact spellings are used on send.
const (
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
	HeaderSignature = "X-Signature"
)

// Envelope carries the three proof-of-origin header values for one signed
// request. It is transient: built by the Signer, attached to the outbound
// request, and never stored.
type Envelope struct {
	// Timestamp is the decimal Unix-seconds string that was signed. The
	// signature covers these exact bytes, so it is kept as a string rather
	// than re-formatted from an integer.
	Timestamp string

	// Nonce is the unique-per-request token, UUID string form.
	Nonce string

	// Signature is the hex-encoded HMAC-SHA256 digest.
	Signature string
}

// IsZero reports whether the envelope is empty, as returned by a disabled
// Signer.
func (e Envelope) IsZero() bool {
	return e == Envelope{}
}

// Apply sets the three authentication headers on h, overwriting any
// existing values with the same names. Duplicate headers would make
// verification ambiguous, so Set is used rather than Add. Applying a zero
// envelope is a no-op: unsigned requests stay unsigned.
func (e Envelope) Apply(h http.Header) {
	if e.IsZero() {
		return
	}
	h.Set(HeaderTimestamp, e.Timestamp)
	h.Set(HeaderNonce, e.Nonce)
	h.Set(HeaderSignature, e.Signature)
}
