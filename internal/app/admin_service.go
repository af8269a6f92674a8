package app

import (
	"context"
	"crypto/subtle"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/company"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/security"
)

// adminSubject is the fixed token subject for the env-credential admin
// account, which has no database row of its own.
const adminSubject = common.UUID("00000000-0000-0000-0000-000000000000")

type AdminService struct {
	users     user.Repository
	companies company.Repository
	jwt       *security.JWTProvider
	email     string
	password  string
}

func NewAdminService(users user.Repository, companies company.Repository, jwt *security.JWTProvider, email, password string) *AdminService {
	return &AdminService{users: users, companies: companies, jwt: jwt, email: email, password: password}
}

type AdminLoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
}

func (s *AdminService) Login(_ context.Context, email, password string) (*AdminLoginResult, error) {
	if s.email == "" || s.password == "" {
		return nil, common.NewError(common.CodeUnauthorized, "admin login is not configured", nil)
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passwordOK {
		return nil, common.NewError(common.CodeUnauthorized, "invalid admin credentials", nil)
	}
	token, expiresAt, err := s.jwt.Generate(adminSubject, user.RoleAdmin, s.email)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AdminLoginResult{Token: token, ExpiresAt: expiresAt, Email: s.email, Role: user.RoleAdmin}, nil
}

type AdminStats struct {
	Users     int `json:"users"`
	Companies int `json:"companies"`
}

func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{Users: users, Companies: companies}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id common.UUID) error {
	return s.users.Delete(ctx, id)
}
