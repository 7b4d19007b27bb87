package apperror

import "net/http"

// Machine-readable reasons for OTP challenge failures
const (
	ReasonExpired           = "EXPIRED"
	ReasonAttemptsExhausted = "ATTEMPTS_EXHAUSTED"
	ReasonInvalidCode       = "INVALID_CODE"
	ReasonNoChallenge       = "NO_CHALLENGE"
)

type AppError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Reason  string   `json:"reason,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation wraps field-by-field validation messages
func Validation(messages []string) *AppError {
	e := New(http.StatusBadRequest, "Validation failed", nil)
	e.Fields = messages
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// ChallengeFailed reports a failed OTP verification with a machine reason
func ChallengeFailed(reason, message string) *AppError {
	e := New(http.StatusUnauthorized, message, nil)
	e.Reason = reason
	return e
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
