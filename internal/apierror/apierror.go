package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrOTPMismatch       ErrorCode = "OTP_MISMATCH"
	ErrInternalServer    ErrorCode = "INTERNAL_SERVER_ERROR"
)

// APIError is the structured failure result every engine operation returns on
// validation failure. Message is user-facing; Code drives HTTP mapping and
// programmatic checks.
type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf extracts the error code, or ErrInternalServer for untyped errors.
func CodeOf(err error) ErrorCode {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrInternalServer
}

func MapErrorToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrInsufficientFunds:
		return http.StatusUnprocessableEntity
	case ErrOTPMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
