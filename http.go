package sigil

import (
	"bytes"
	"io"
	"net/http"
)

// SignRequest signs req's body and attaches the authentication headers,
// overwriting any existing values with the same names. The body is read
// fully and restored, so the request remains sendable. On a disabled
// Signer this is a no-op.
func (s *Signer) SignRequest(req *http.Request) error {
	if !s.Enabled() {
		return nil
	}

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		if err := req.Body.Close(); err != nil {
			return err
		}
		body = b
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	s.Sign(body).Apply(req.Header)
	return nil
}

// Middleware wraps next with inbound verification. The request body is
// buffered for the signature check and restored for next. Rejected
// requests get a plain 401; hosts that want to choose the status or body
// call Verify directly instead. On a disabled Verifier every request
// passes straight through, body untouched.
//
// The body is buffered in full here; cap oversized payloads upstream with
// http.MaxBytesReader.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !v.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "unable to read request body", http.StatusBadRequest)
			return
		}
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !v.Verify(r.Context(), r.Header, body) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
