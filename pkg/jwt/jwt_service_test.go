package jwt

import (
	"Food-Wastage-Management/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token, err := svc.GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)

	subject, role, err := svc.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestTokenRejectedWithOtherSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("first").GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("second").GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = NewJWTServiceWithSecret("first").GetSubjectByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret").(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, err := svc.GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("test-secret").GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	_, err := NewJWTServiceWithSecret("").GenerateToken("admin", domain.RoleAdmin)
	assert.Error(t, err)
}
