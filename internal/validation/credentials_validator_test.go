package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator_ValidateLogin(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		wantField   string
		wantType    ValidationErrorType
		expectError bool
	}{
		{
			name:        "should accept valid credentials",
			email:       "alice@example.com",
			password:    "password1",
			expectError: false,
		},
		{
			name:        "should reject a missing email",
			email:       "",
			password:    "password1",
			wantField:   "email",
			wantType:    ErrorTypeRequired,
			expectError: true,
		},
		{
			name:        "should reject a malformed email",
			email:       "alice-at-example",
			password:    "password1",
			wantField:   "email",
			wantType:    ErrorTypeInvalidFormat,
			expectError: true,
		},
		{
			name:        "should reject a missing password",
			email:       "alice@example.com",
			password:    "",
			wantField:   "password",
			wantType:    ErrorTypeRequired,
			expectError: true,
		},
		{
			name:        "should reject a password shorter than eight characters",
			email:       "alice@example.com",
			password:    "short1",
			wantField:   "password",
			wantType:    ErrorTypeInvalidLength,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			validator := NewCredentialsValidator()

			// Act
			err := validator.ValidateLogin(tt.email, tt.password)

			// Assert
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			fieldErrors := validationErr.GetFieldErrors(tt.wantField)
			require.NotEmpty(t, fieldErrors)
			assert.Equal(t, tt.wantType, fieldErrors[0].Type)
		})
	}
}

func TestCredentialsValidator_ValidateRegistration(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		confirm     string
		wantField   string
		wantType    ValidationErrorType
		expectError bool
	}{
		{
			name:        "should accept valid registration input",
			username:    "alice",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass",
			expectError: false,
		},
		{
			name:        "should reject a missing username",
			username:    "",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass",
			wantField:   "username",
			wantType:    ErrorTypeRequired,
			expectError: true,
		},
		{
			name:        "should reject a username shorter than three characters",
			username:    "al",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass",
			wantField:   "username",
			wantType:    ErrorTypeInvalidLength,
			expectError: true,
		},
		{
			name:        "should reject a username longer than twenty characters",
			username:    "this-username-is-way-too-long",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass",
			wantField:   "username",
			wantType:    ErrorTypeInvalidLength,
			expectError: true,
		},
		{
			name:        "should reject a malformed email",
			username:    "alice",
			email:       "not-an-email",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass",
			wantField:   "email",
			wantType:    ErrorTypeInvalidFormat,
			expectError: true,
		},
		{
			name:        "should reject a weak password",
			username:    "alice",
			email:       "alice@example.com",
			password:    "alllowercase1",
			confirm:     "alllowercase1",
			wantField:   "password",
			wantType:    ErrorTypeInvalidValue,
			expectError: true,
		},
		{
			name:        "should reject a short password",
			username:    "alice",
			email:       "alice@example.com",
			password:    "Ab1&",
			confirm:     "Ab1&",
			wantField:   "password",
			wantType:    ErrorTypeInvalidLength,
			expectError: true,
		},
		{
			name:        "should reject a missing confirmation",
			username:    "alice",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "",
			wantField:   "confirm_password",
			wantType:    ErrorTypeRequired,
			expectError: true,
		},
		{
			name:        "should reject a mismatched confirmation",
			username:    "alice",
			email:       "alice@example.com",
			password:    "Str0ng&Pass",
			confirm:     "Str0ng&Pass!",
			wantField:   "confirm_password",
			wantType:    ErrorTypeMismatch,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			validator := NewCredentialsValidator()

			// Act
			err := validator.ValidateRegistration(tt.username, tt.email, tt.password, tt.confirm)

			// Assert
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			fieldErrors := validationErr.GetFieldErrors(tt.wantField)
			require.NotEmpty(t, fieldErrors)
			assert.Equal(t, tt.wantType, fieldErrors[0].Type)
		})
	}
}

func TestValidator_IsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "should accept all four character classes",
			password: "Str0ng&Pass",
			want:     true,
		},
		{
			name:     "should reject a password without uppercase",
			password: "str0ng&pass",
			want:     false,
		},
		{
			name:     "should reject a password without a digit",
			password: "Strong&Pass",
			want:     false,
		},
		{
			name:     "should reject a password without a special character",
			password: "Str0ngPass",
			want:     false,
		},
		{
			name:     "should reject a special character outside the allowed set",
			password: "Str0ng#Pass",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewValidator()

			assert.Equal(t, tt.want, validator.IsStrongPassword(tt.password))
		})
	}
}
