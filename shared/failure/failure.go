package failure

import (
	"errors"
	"net/http"
)

// Stable machine-readable error kinds. Callers branch on these, never on
// message text.
const (
	KindInvalidDateRange  = "invalid_date_range"
	KindInvalidDate       = "invalid_date"
	KindSpaceNotFound     = "space_not_found"
	KindBookingOwnSpace   = "booking_own_space"
	KindBookingConflict   = "booking_conflict"
	KindNotFound          = "not_found"
	KindForbidden         = "forbidden"
	KindInvalidTransition = "invalid_transition"
	KindAlreadyCancelled  = "already_cancelled"
	KindValidation        = "validation"
	KindUnauthorized      = "unauthorized"
	KindInternal          = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// BadRequestKind returns a bad-request Failure carrying a domain error kind.
func BadRequestKind(kind, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    kind,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// NotFoundKind returns a not-found Failure carrying a domain error kind.
func NotFoundKind(kind, msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    kind,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(kind, message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    kind,
		Message: message,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the machine-readable kind of an error interface.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
