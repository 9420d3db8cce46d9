package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRegister() *RegisterRequest {
	return &RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "longenough",
		Phone:    "15112345678",
		Country:  "Germany",
	}
}

func TestValidateRegisterAccepts(t *testing.T) {
	require.Nil(t, ValidateRegister(validRegister()))
}

func TestValidateRegisterFieldErrors(t *testing.T) {
	req := &RegisterRequest{}
	fields := ValidateRegister(req)
	require.Len(t, fields, 5)
	require.Equal(t, "Username is required", fields["username"])
	require.Equal(t, "Email is required", fields["email"])
	require.Equal(t, "Password is required", fields["password"])
	require.Equal(t, "Phone number is required", fields["phone"])
	require.Equal(t, "Country is required", fields["country"])
}

func TestValidateRegisterEmailShape(t *testing.T) {
	for _, email := range []string{
		"plainaddress",
		"missing@tld",
		"two words@example.com",
		"@example.com",
		"jane@",
	} {
		req := validRegister()
		req.Email = email
		fields := ValidateRegister(req)
		require.NotNil(t, fields, "email %q should fail", email)
		require.Equal(t, "Invalid email address", fields["email"])
	}
}

func TestValidateRegisterShortPassword(t *testing.T) {
	req := validRegister()
	req.Password = "seven77"
	fields := ValidateRegister(req)
	require.Equal(t, "Password must be at least 8 characters", fields["password"])
}

func TestValidateLogin(t *testing.T) {
	require.Nil(t, ValidateLogin(&LoginRequest{Email: "jane@example.com", Password: "x"}))

	fields := ValidateLogin(&LoginRequest{Email: "nope", Password: ""})
	require.Equal(t, "Invalid email address", fields["email"])
	require.Equal(t, "Password is required", fields["password"])
}

// Sign-in accepts any non-empty password; only sign-up enforces the
// 8-character minimum.
func TestValidateLoginShortPasswordAllowed(t *testing.T) {
	require.Nil(t, ValidateLogin(&LoginRequest{Email: "jane@example.com", Password: "short"}))
}
