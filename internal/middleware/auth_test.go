package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, bool) {
	id, ok := s[token]
	return id, ok
}

type panickyVerifier struct{}

func (panickyVerifier) Verify(string) (string, bool) { panic("boom") }

func serveAuth(t *testing.T, verifier TokenVerifier, header string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	var (
		reached bool
		subject string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		subject, _ = SubjectIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	JWTAuth(verifier)(next).ServeHTTP(rec, req)
	return rec, reached, subject
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJWTAuthValidToken(t *testing.T) {
	rec, reached, subject := serveAuth(t, stubVerifier{"good": "user-1"}, "Bearer good")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, "user-1", subject)
}

func TestJWTAuthRejections(t *testing.T) {
	tests := []struct {
		name     string
		verifier TokenVerifier
		header   string
		code     string
	}{
		{name: "missing header", verifier: stubVerifier{}, header: "", code: "NO_TOKEN"},
		{name: "wrong scheme", verifier: stubVerifier{"good": "u"}, header: "Basic good", code: "NO_TOKEN"},
		{name: "empty bearer", verifier: stubVerifier{}, header: "Bearer ", code: "NO_TOKEN"},
		{name: "garbage token", verifier: stubVerifier{"good": "u"}, header: "Bearer garbage", code: "INVALID_TOKEN"},
		{name: "empty subject", verifier: stubVerifier{"blank": ""}, header: "Bearer blank", code: "INVALID_TOKEN"},
		{name: "verifier panics", verifier: panickyVerifier{}, header: "Bearer anything", code: "TOKEN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, reached, _ := serveAuth(t, tt.verifier, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, reached, "next handler must not run")
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSubjectIDFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SubjectIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = SubjectIDFromContext(WithSubjectID(req.Context(), ""))
	assert.False(t, ok)
}
