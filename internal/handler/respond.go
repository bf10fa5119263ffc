package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/recruitme/recruitme-go/internal/logger"
	"github.com/recruitme/recruitme-go/internal/middleware"
	"github.com/recruitme/recruitme-go/internal/model"
)

const maxBodyBytes = 1 << 20 // 1MB

var (
	errInvalidBody = model.NewError(model.KindBadRequest, model.CodeInvalidBody, "invalid request body")
	errBodyTooBig  = model.NewError(model.KindPayloadTooLarge, model.CodePayloadTooLarge, "request body too large")
	errNoIdentity  = model.NewError(model.KindNoToken, model.CodeNoToken, "no token provided")
)

type errorBody struct {
	Error   string             `json:"error"`
	Code    string             `json:"code,omitempty"`
	Details []model.FieldError `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind model.Kind) int {
	switch kind {
	case model.KindNoToken, model.KindInvalidToken, model.KindTokenError,
		model.KindInvalidCredential, model.KindNotFoundCredential:
		return http.StatusUnauthorized
	case model.KindValidation, model.KindBadRequest:
		return http.StatusBadRequest
	case model.KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case model.KindDuplicateEmail, model.KindAlreadyEnrolled, model.KindAlreadySaved:
		return http.StatusConflict
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the JSON error body. Errors without a known kind
// are logged with the request logger and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := model.AsError(err)
	if !ok || e.Kind == model.KindInternal {
		logger.FromContext(r.Context()).Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: "internal server error",
			Code:  model.CodeInternal,
		})
		return
	}

	writeJSON(w, statusFor(e.Kind), errorBody{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	})
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return errBodyTooBig
	}
	return errInvalidBody
}

// callerID returns the authenticated identity placed in the context by JWTAuth.
func callerID(r *http.Request) (string, error) {
	id, ok := middleware.SubjectIDFromContext(r.Context())
	if !ok {
		return "", errNoIdentity
	}
	return id, nil
}

// pathID validates a resource id from the URL. Malformed ids cannot name an
// existing record, so they are reported as notFound.
func pathID(raw string, notFound error) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", notFound
	}
	return id.String(), nil
}
