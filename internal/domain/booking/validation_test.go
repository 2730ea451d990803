package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfbook/service-booking/pkg/domain"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode domain.ValidationCode
	}{
		{"valid name", "Ravi Kumar", ""},
		{"empty", "", domain.CodeEmptyField},
		{"whitespace only", "   ", domain.CodeEmptyField},
		{"single char", "R", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantCode, vErr.Code)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode domain.ValidationCode
	}{
		{"valid email", "ravi@example.com", ""},
		{"valid with subdomain", "a@mail.example.co.in", ""},
		{"empty", "", domain.CodeEmptyField},
		{"no at sign", "raviexample.com", domain.CodeMalformedEmail},
		{"no dot after at", "a@b", domain.CodeMalformedEmail},
		{"embedded whitespace", "ra vi@example.com", domain.CodeMalformedEmail},
		{"trailing dot only domain", "a@b.", domain.CodeMalformedEmail},
		{"at sign only", "@", domain.CodeMalformedEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantCode, vErr.Code)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid 10 digits", "9876543210", false},
		{"too short", "12345", true},
		{"too long", "98765432100", true},
		{"letters", "98765abc10", true},
		{"with spaces", "98765 4321", true},
		{"with plus prefix", "+919876543", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, domain.CodeInvalidPhone, vErr.Code)
		})
	}
}
