package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test_secret_key_1234567890", 15*time.Minute)

	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{name: "admin", userID: "65f1c0", role: "admin"},
		{name: "reader", userID: "42", role: "user"},
		{name: "no role", userID: "7", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userID, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestMaker_ParseToken_Invalid(t *testing.T) {
	maker := NewJWTMaker("secret", time.Minute)
	other := NewJWTMaker("another_secret", time.Minute)
	expired := NewJWTMaker("secret", -time.Minute)

	foreign, err := other.GenerateToken("1", "admin")
	require.NoError(t, err)
	old, err := expired.GenerateToken("1", "admin")
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "чужой ключ", token: foreign},
		{name: "истёкший", token: old},
		{name: "alg none", token: none},
		{name: "мусор", token: "not.a.token"},
		{name: "пустой", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Nil(t, claims)
			assert.Error(t, err)
		})
	}
}
