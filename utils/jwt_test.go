package utils

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func token(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecodeTokenClaims(t *testing.T) {
	claims, err := DecodeTokenClaims(token(t, map[string]any{
		"sub":   "u-1",
		"email": "v@example.com",
		"role":  "admin",
	}))
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.Subject)
	require.Equal(t, "v@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestDecodeRoleClaimVariants(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]any
		want   string
	}{
		{"roles array", map[string]any{"sub": "u-1", "roles": []string{"ADMIN", "user"}}, "ADMIN"},
		{"userRole", map[string]any{"sub": "u-1", "userRole": "user"}, "user"},
		{"no role", map[string]any{"sub": "u-1"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := DecodeTokenClaims(token(t, tc.claims))
			require.NoError(t, err)
			require.Equal(t, tc.want, claims.Role)
		})
	}
}

func TestDecodeRejectsAnonymousToken(t *testing.T) {
	_, err := DecodeTokenClaims(token(t, map[string]any{"role": "admin"}))
	require.Error(t, err)
}

func TestDecodeRejectsMalformedToken(t *testing.T) {
	_, err := DecodeTokenClaims("not-a-token")
	require.Error(t, err)
}
