// Package sigil provides mutual HMAC request authentication with replay
// protection for Go services.
//
// Sigil is a library — not a service. Import it into a messaging or webhook
// host to prove the origin and freshness of requests with a pre-shared
// secret, without TLS client certificates or an auth server. A Signer
// attaches three proof-of-origin headers (X-Timestamp, X-Nonce,
// X-Signature) to outbound requests; a Verifier validates them on inbound
// requests and rejects replays through a pluggable nonce store.
//
// Key features:
//   - HMAC-SHA256 over a canonical NUL-delimited payload, hex-encoded
//   - Constant-time signature comparison
//   - Freshness window enforcement against stale and future-dated requests
//   - Bounded in-memory replay tracking, or Redis-backed tracking for
//     multi-instance deployments
//   - Empty secret disables the protocol entirely (backward-compatible
//     default for unsigned traffic)
//
// Quick start:
//
//	signer, _ := sigil.NewSigner(secret)
//	env := signer.Sign(body)
//	env.Apply(req.Header)
//
//	verifier, _ := sigil.NewVerifier(secret)
//	defer verifier.Close()
//	if !verifier.Verify(ctx, req.Header, body) {
//	    // reject the request
//	}
package sigil
