package auth

import "regexp"

// emailRegex accepts the simple local@domain.tld shape the forms check.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegister checks the sign-up form field by field and returns
// per-field error messages, nil when everything passes. Nothing here
// touches the backend.
func ValidateRegister(req *RegisterRequest) map[string]string {
	fields := map[string]string{}

	if req.Username == "" {
		fields["username"] = "Username is required"
	}

	if req.Email == "" {
		fields["email"] = "Email is required"
	} else if !emailRegex.MatchString(req.Email) {
		fields["email"] = "Invalid email address"
	}

	if req.Password == "" {
		fields["password"] = "Password is required"
	} else if len(req.Password) < 8 {
		fields["password"] = "Password must be at least 8 characters"
	}

	if req.Phone == "" {
		fields["phone"] = "Phone number is required"
	}

	if req.Country == "" {
		fields["country"] = "Country is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ValidateLogin checks the sign-in form. Password length is deliberately
// not enforced here; only sign-up applies the 8-character minimum.
func ValidateLogin(req *LoginRequest) map[string]string {
	fields := map[string]string{}

	if req.Email == "" {
		fields["email"] = "Email is required"
	} else if !emailRegex.MatchString(req.Email) {
		fields["email"] = "Invalid email address"
	}

	if req.Password == "" {
		fields["password"] = "Password is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
