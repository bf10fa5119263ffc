package model

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. The HTTP layer maps each kind to one status.
type Kind int

const (
	KindInternal Kind = iota
	KindNoToken
	KindInvalidToken
	KindTokenError
	KindValidation
	KindBadRequest
	KindPayloadTooLarge
	KindDuplicateEmail
	KindInvalidCredential
	KindNotFoundCredential
	KindNotFound
	KindAlreadyEnrolled
	KindAlreadySaved
	KindForbidden
	KindRateLimited
)

var kindNames = map[Kind]string{
	KindInternal:           "Internal",
	KindNoToken:            "NoToken",
	KindInvalidToken:       "InvalidToken",
	KindTokenError:         "TokenError",
	KindValidation:         "Validation",
	KindBadRequest:         "BadRequest",
	KindPayloadTooLarge:    "PayloadTooLarge",
	KindDuplicateEmail:     "DuplicateEmail",
	KindInvalidCredential:  "InvalidCredential",
	KindNotFoundCredential: "NotFoundCredential",
	KindNotFound:           "NotFound",
	KindAlreadyEnrolled:    "AlreadyEnrolled",
	KindAlreadySaved:       "AlreadySaved",
	KindForbidden:          "Forbidden",
	KindRateLimited:        "RateLimited",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Machine-readable error codes returned to clients.
const (
	CodeNoToken              = "NO_TOKEN"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeTokenError           = "TOKEN_ERROR"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInvalidBody          = "INVALID_BODY"
	CodePayloadTooLarge      = "PAYLOAD_TOO_LARGE"
	CodeEmailExists          = "EMAIL_EXISTS"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeNotFound             = "NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeCompanyNotFound      = "COMPANY_NOT_FOUND"
	CodeProgramNotFound      = "PROGRAM_NOT_FOUND"
	CodeEnrollmentNotFound   = "ENROLLMENT_NOT_FOUND"
	CodeSavedProgramNotFound = "SAVED_PROGRAM_NOT_FOUND"
	CodeAlreadyEnrolled      = "ALREADY_ENROLLED"
	CodeAlreadySaved         = "ALREADY_SAVED"
	CodeForbidden            = "FORBIDDEN"
	CodeRateLimited          = "RATE_LIMITED"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeInternal             = "INTERNAL_ERROR"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a typed failure carrying a kind, a client-facing code and message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []FieldError
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Details)
}

// NewError creates an Error.
func NewError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// NewValidationError creates a KindValidation error listing the offending fields.
func NewValidationError(details ...FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeValidation,
		Message: "invalid request data",
		Details: details,
	}
}

// AsError extracts the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindInternal
}
