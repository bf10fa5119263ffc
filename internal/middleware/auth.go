package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/recruitme/recruitme-go/internal/logger"
	"github.com/recruitme/recruitme-go/internal/model"
)

type contextKey string

const subjectIDKey contextKey = "subjectID"

// TokenVerifier checks a bearer token and returns the identity it was issued to.
type TokenVerifier interface {
	Verify(token string) (subjectID string, ok bool)
}

// JWTAuth returns middleware that validates a Bearer token from the Authorization header
// and stores the token subject in the request context. It performs no authorization.
func JWTAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subjectID, code := authenticate(r, verifier)
			switch code {
			case "":
			case model.CodeNoToken:
				writeJSONError(w, http.StatusUnauthorized, code, "no token provided")
				return
			case model.CodeInvalidToken:
				writeJSONError(w, http.StatusUnauthorized, code, "invalid or expired token")
				return
			default:
				writeJSONError(w, http.StatusUnauthorized, code, "failed to validate token")
				return
			}

			ctx := WithSubjectID(r.Context(), subjectID)
			ctx = logger.IntoContext(ctx, logger.FromContext(ctx).With("subject_id", subjectID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate extracts and verifies the bearer token. It returns an error code
// on failure; a panic during verification yields TOKEN_ERROR.
func authenticate(r *http.Request, verifier TokenVerifier) (subjectID, code string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(r.Context()).Error("token verification panicked", "panic", rec)
			subjectID, code = "", model.CodeTokenError
		}
	}()

	authHeader := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", model.CodeNoToken
	}

	subjectID, ok := verifier.Verify(token)
	if !ok || subjectID == "" {
		return "", model.CodeInvalidToken
	}
	return subjectID, ""
}

// WithSubjectID returns a copy of ctx carrying an authenticated identity.
func WithSubjectID(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, subjectIDKey, subjectID)
}

// SubjectIDFromContext extracts the authenticated identity from the request context.
// The identity may be a student or a company; services decide which is acceptable.
func SubjectIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(subjectIDKey).(string)
	return id, ok && id != ""
}
