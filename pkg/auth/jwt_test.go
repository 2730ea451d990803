package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "admin@example.com", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-one", 15*time.Minute, 24*time.Hour)
	m2 := NewJWTManager("secret-two", 15*time.Minute, 24*time.Hour)

	token, err := m1.GenerateAccessToken(uuid.New(), "admin@example.com", RoleAdmin)
	require.NoError(t, err)

	_, err = m2.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "admin@example.com", RoleAdmin)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Garbage(t *testing.T) {
	m := NewJWTManager("secret", 15*time.Minute, 24*time.Hour)
	_, err := m.VerifyToken("not.a.token")
	assert.Error(t, err)
}
