package auth

import (
	"testing"
	"time"

	"mercado_erp/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	j := NewJWTIssuer("secret", time.Hour)
	session := entities.Session{UserID: "u2", Name: "Ana", Username: "ana", Roles: []entities.Role{entities.RoleFinance, entities.RolePurchasing}}

	token, err := j.Issue(session)
	require.NoError(t, err)

	got, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expired", func(t *testing.T) {
		j := NewJWTIssuer("secret", time.Minute)
		j.now = func() time.Time { return base }
		token, err := j.Issue(entities.Session{UserID: "u1"})
		require.NoError(t, err)

		j.now = func() time.Time { return base.Add(2 * time.Minute) }
		_, err = j.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTIssuer("a", time.Hour).Issue(entities.Session{UserID: "u1"})
		require.NoError(t, err)

		_, err = NewJWTIssuer("b", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "u1", "iss": issuer}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewJWTIssuer("secret", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewJWTIssuer("secret", time.Hour).Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
