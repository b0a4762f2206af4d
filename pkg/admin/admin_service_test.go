package admin

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdmin(t *testing.T, password string) (AdminService, jwt.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	return NewAdminService("admin", string(hash), jwtService), jwtService
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestAdmin(t, "s3cret")

	res, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)

	subject, role, err := jwtService.GetSubjectByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAdmin(t, "s3cret")
	ctx := context.Background()

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	svc := NewAdminService("admin", "", jwt.NewJWTServiceWithSecret("test-secret"))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "anything"})
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
