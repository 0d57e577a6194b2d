package password_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"adspot/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{name: "valid password", password: "s3cret-passw0rd"},
		{name: "empty password", password: "", expectError: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected error %v, got %v", tt.expectError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if hash == tt.password || hash == "" {
				t.Error("expected a non-empty hash different from the password")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := password.Verify("correct-horse", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-horse", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for wrong password, got %v", err)
	}

	if err := password.Verify("", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("anything", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}
