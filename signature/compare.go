package signature

import "crypto/hmac"

// ValidFormat reports whether s is a well-formed digest: exactly 64 ASCII
// hex characters, lowercase. Malformed signatures are rejected here before
// any HMAC computation happens.
func ValidFormat(s string) bool {
	if len(s) != DigestLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Equal compares two hex digests in constant time. The running time does
// not depend on where the first mismatching byte occurs, which defeats
// byte-by-byte timing recovery of a valid signature. Inputs of different
// lengths compare unequal immediately; callers gate on ValidFormat first so
// both sides are always DigestLength here.
func Equal(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
