package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	UserType string `validate:"required,oneof=doctor patient"`
	Age      int    `validate:"omitempty,gt=0"`
}

func TestValidatePassesValidStruct(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Email:    "jane.roe@example.com",
		Password: "correct-horse",
		UserType: "doctor",
		Age:      34,
	})
	require.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		UserType: "nurse",
		Age:      -1,
	})
	require.Error(t, err)

	fields := cv.FormatValidationErrors(err)
	require.Equal(t, "Email must be a valid email address", fields["Email"])
	require.Equal(t, "Password must be at least 8 characters", fields["Password"])
	require.Equal(t, "UserType must be one of: doctor patient", fields["UserType"])
	require.Equal(t, "Age must be greater than 0", fields["Age"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(sampleRequest{})
	require.Error(t, err)

	fields := cv.FormatValidationErrors(err)
	require.Equal(t, "Email is required", fields["Email"])
	require.Equal(t, "Password is required", fields["Password"])
	require.Equal(t, "UserType is required", fields["UserType"])
	require.NotContains(t, fields, "Age")
}
