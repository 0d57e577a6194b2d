package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"adspot/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindValidation,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{
			name: "BadRequestKind",
			err:  failure.BadRequestKind(failure.KindInvalidDateRange, "end date must be after start date"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidDateRange,
		},
		{
			name: "Conflict",
			err:  failure.Conflict(failure.KindBookingConflict, "requested dates overlap an existing booking"),
			code: http.StatusConflict,
			kind: failure.KindBookingConflict,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("not your space"),
			code: http.StatusForbidden,
			kind: failure.KindForbidden,
		},
		{
			name: "NotFoundKind",
			err:  failure.NotFoundKind(failure.KindSpaceNotFound, "space not found"),
			code: http.StatusNotFound,
			kind: failure.KindSpaceNotFound,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("missing token"),
			code: http.StatusUnauthorized,
			kind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if got := failure.GetKind(tt.err); got != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	err := errors.New("plain error")

	if got := failure.GetCode(err); got != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, got)
	}

	if got := failure.GetKind(err); got != failure.KindInternal {
		t.Errorf("expected kind to be %s, got %s", failure.KindInternal, got)
	}
}

func TestGetKind_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("handling request: %w", failure.Conflict(failure.KindBookingConflict, "overlap"))

	if !failure.IsKind(err, failure.KindBookingConflict) {
		t.Errorf("expected wrapped failure to keep kind %s", failure.KindBookingConflict)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
