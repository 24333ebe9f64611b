package models

import "time"

// Credentials is the login request body forwarded to the backend.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegistrationInput is the signup request body.
type RegistrationInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResult is what the backend returns on a successful login: a bearer
// token whose claims encode the user's role.
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}

// ViewerSession is the gateway-side session context that replaces ad hoc
// browser storage reads: one record per signed-in viewer, keyed by an opaque
// cookie ID, holding the backend bearer token and the role derived from it.
type ViewerSession struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the session carries the admin role.
func (v ViewerSession) IsAdmin() bool {
	return v.Role == "admin" || v.Role == "ADMIN"
}

// OTPRequest asks the backend to mail a one-time code.
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPVerification exchanges a one-time code for a bearer token.
type OTPVerification struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}
