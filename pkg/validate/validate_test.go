package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type bidRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{
			name: "Valid bid",
			in:   bidRequest{Amount: decimal.NewFromInt(10)},
		},
		{
			name:     "Zero bid",
			in:       bidRequest{Amount: decimal.Zero},
			expected: "amount failed on the 'gt=0' rule",
		},
		{
			name: "Valid registration",
			in:   registerRequest{Email: "a@example.com", Password: "secret1"},
		},
		{
			name:     "Bad registration",
			in:       registerRequest{Email: "nope", Password: "123"},
			expected: "email failed on the 'email' rule; password failed on the 'min=6' rule",
		},
		{
			name:     "Missing email",
			in:       registerRequest{Password: "secret1"},
			expected: "email failed on the 'required' rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expected)
		})
	}
}
