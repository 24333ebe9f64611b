package utils

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the fields of a backend-issued bearer token the gateway
// cares about. Signature validation stays with the backend; the gateway only
// reads claims to derive the role flag.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// DecodeTokenClaims parses a bearer token without verifying its signature
// and extracts the subject, email and role claims.
func DecodeTokenClaims(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	// Role claim naming drifted between backend versions.
	for _, key := range []string{"role", "roles", "userRole"} {
		switch v := claims[key].(type) {
		case string:
			out.Role = v
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					out.Role = s
				}
			}
		}
		if out.Role != "" {
			break
		}
	}

	if out.Subject == "" && out.Email == "" {
		return nil, errors.New("token carries no usable identity claims")
	}
	return out, nil
}
