package sigil_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/xraph/sigil"
	"github.com/xraph/sigil/clock"
	"github.com/xraph/sigil/signature"
)

func TestSignEnvelope(t *testing.T) {
	c := clock.NewManual(time.Unix(1700000000, 0))
	signer, err := sigil.NewSigner("s3cr3t",
		sigil.WithClock(c),
		sigil.WithNonceSource(func() string { return "11111111-1111-1111-1111-111111111111" }),
	)
	if err != nil {
		t.Fatal(err)
	}

	body := []byte(`{"body":{"message":"hi"}}`)
	env := signer.Sign(body)

	if env.Timestamp != "1700000000" {
		t.Errorf("Timestamp = %q, want %q", env.Timestamp, "1700000000")
	}
	if env.Nonce != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("Nonce = %q", env.Nonce)
	}

	want := signature.Sign([]byte("s3cr3t"), env.Timestamp, env.Nonce, body)
	if env.Signature != want {
		t.Errorf("Signature = %q, want %q", env.Signature, want)
	}
}

func TestSignMintsFreshNoncePerCall(t *testing.T) {
	signer, err := sigil.NewSigner("whsec_noncesecret")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		env := signer.Sign([]byte("same body every time"))
		if seen[env.Nonce] {
			t.Fatalf("nonce %q reused", env.Nonce)
		}
		seen[env.Nonce] = true
	}
}

func TestDisabledSigner(t *testing.T) {
	signer, err := sigil.NewSigner("")
	if err != nil {
		t.Fatal(err)
	}

	if signer.Enabled() {
		t.Error("Enabled() = true for empty secret")
	}
	if env := signer.Sign([]byte("body")); !env.IsZero() {
		t.Errorf("disabled Sign() = %+v, want zero envelope", env)
	}
}

func TestEnvelopeApplyOverwrites(t *testing.T) {
	h := http.Header{}
	h.Set(sigil.HeaderTimestamp, "stale")
	h.Add(sigil.HeaderNonce, "old-1")
	h.Add(sigil.HeaderNonce, "old-2")

	env := sigil.Envelope{Timestamp: "1700000000", Nonce: "n", Signature: "s"}
	env.Apply(h)

	if got := h.Values(sigil.HeaderNonce); len(got) != 1 || got[0] != "n" {
		t.Errorf("nonce header values = %v, want exactly [n]", got)
	}
	if got := h.Get(sigil.HeaderTimestamp); got != "1700000000" {
		t.Errorf("timestamp header = %q", got)
	}
	if got := h.Get(sigil.HeaderSignature); got != "s" {
		t.Errorf("signature header = %q", got)
	}
}

func TestZeroEnvelopeApplyIsNoOp(t *testing.T) {
	h := http.Header{}
	sigil.Envelope{}.Apply(h)

	if len(h) != 0 {
		t.Errorf("zero envelope set headers: %v", h)
	}
}

func TestOptionValidation(t *testing.T) {
	if _, err := sigil.NewSigner("s", sigil.WithMaxAge(0)); err == nil {
		t.Error("WithMaxAge(0) accepted")
	}
	if _, err := sigil.NewVerifier("s", sigil.WithMaxAge(500*time.Millisecond)); !errors.Is(err, sigil.ErrInvalidMaxAge) {
		t.Errorf("WithMaxAge(500ms) error = %v, want ErrInvalidMaxAge", err)
	}
	if _, err := sigil.NewSigner("s", sigil.WithClock(nil)); err == nil {
		t.Error("WithClock(nil) accepted")
	}
	if _, err := sigil.NewVerifier("s", sigil.WithNonceStore(nil)); err == nil {
		t.Error("WithNonceStore(nil) accepted")
	}
}
