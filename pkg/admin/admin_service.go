package admin

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/pkg/jwt"
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

type (
	AdminService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	adminService struct {
		username     string
		passwordHash []byte
		jwtService   jwt.JWTService
	}
)

// NewAdminService guards the write endpoints with a single configured account.
// passwordHash is a bcrypt hash; an empty hash disables login.
func NewAdminService(username, passwordHash string, jwtService jwt.JWTService) AdminService {
	return &adminService{
		username:     username,
		passwordHash: []byte(passwordHash),
		jwtService:   jwtService,
	}
}

func (s *adminService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if len(s.passwordHash) == 0 {
		return domain.LoginResponse{}, domain.ErrUserNotAllowed
	}
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) != 1 {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(req.Username, domain.RoleAdmin)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{Token: token, Role: domain.RoleAdmin}, nil
}
