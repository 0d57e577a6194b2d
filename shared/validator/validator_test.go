package validator_test

import (
	"strings"
	"testing"

	"adspot/shared/failure"
	"adspot/shared/validator"
)

type blockRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,daydate"`
	Notes string   `json:"notes" validate:"omitempty,max=50"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"dates": ["2026-01-10", "2026-01-11"]}`,
		},
		{
			name:    "malformed json",
			body:    `{"dates": [`,
			wantErr: true,
		},
		{
			name:    "missing dates",
			body:    `{"notes": "winter campaign"}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"dates": ["10/01/2026"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := blockRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}

				if failure.GetCode(err) != 400 {
					t.Errorf("expected bad request code, got %d", failure.GetCode(err))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	req := blockRequest{Dates: []string{"2026-02-30x"}}

	if err := validator.ValidateStruct(&req); err == nil {
		t.Fatal("expected error for malformed date string")
	}

	ok := blockRequest{Dates: []string{"2026-02-10"}, Notes: "ok"}
	if err := validator.ValidateStruct(&ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("", "required"); err == nil {
		t.Fatal("expected error for empty required var")
	}

	if err := validator.ValidateVar("confirmed", "oneof=pending confirmed rejected cancelled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
