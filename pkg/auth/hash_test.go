package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:     "Longest accepted password",
			password: strings.Repeat("p", MaxPasswordBytes),
		},
		{
			name:        "Empty Password",
			password:    "",
			expectedErr: ErrEmptyPassword,
		},
		{
			name:        "Password too long",
			password:    strings.Repeat("p", MaxPasswordBytes+1),
			expectedErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashedPassword)
				return
			}
			require.NoError(t, err)
			cost, err := bcrypt.Cost([]byte(hashedPassword))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestNewHashService_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewHashService(12).cost)
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashed, err := hashService.HashPassword("securepassword")
	require.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expected       bool
	}{
		{
			name:           "Matching password",
			password:       "securepassword",
			hashedPassword: hashed,
			expected:       true,
		},
		{
			name:           "Wrong password",
			password:       "wrongpassword",
			hashedPassword: hashed,
			expected:       false,
		},
		{
			name:           "Malformed hash",
			password:       "securepassword",
			hashedPassword: "not-a-bcrypt-hash",
			expected:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}
