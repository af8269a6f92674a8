package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/company"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/security"
)

type AuthService struct {
	users     user.Repository
	companies company.Repository
	jwt       *security.JWTProvider
}

func NewAuthService(users user.Repository, companies company.Repository, jwt *security.JWTProvider) *AuthService {
	return &AuthService{users: users, companies: companies, jwt: jwt}
}

type RegisterUserInput struct {
	Name               string
	Gender             string
	Email              string
	Mobile             string
	Password           string
	StudentType        string
	Department         string
	ImageURL           string
	CurrentAddress     string
	AcademicBackground string
	CGPA               *float64
	Skills             string
	University         string
	CertificateURL     string
	CVURL              string
	ProjectLink        string
	LinkedinLink       string
}

type RegisterCompanyInput struct {
	CompanyName       string
	Email             string
	Password          string
	EstablishmentYear int
	ContactNo         string
	IndustryType      string
	Address           string
	LicenseNo         string
	Description       string
	ImageURL          string
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      user.Role `json:"role"`
	Profile   any       `json:"profile"`
}

func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (*AuthResult, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := s.users.Create(ctx, user.User{
		Name:               strings.TrimSpace(in.Name),
		Gender:             in.Gender,
		Email:              normalizeEmail(in.Email),
		Mobile:             in.Mobile,
		PasswordHash:       hash,
		StudentType:        in.StudentType,
		Department:         in.Department,
		ImageURL:           in.ImageURL,
		CurrentAddress:     in.CurrentAddress,
		AcademicBackground: in.AcademicBackground,
		CGPA:               in.CGPA,
		Skills:             in.Skills,
		University:         in.University,
		CertificateURL:     in.CertificateURL,
		CVURL:              in.CVURL,
		ProjectLink:        in.ProjectLink,
		LinkedinLink:       in.LinkedinLink,
	})
	if err != nil {
		return nil, err
	}
	return s.issueToken(created.ID, user.RoleApplicant, created.Email, created)
}

func (s *AuthService) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*AuthResult, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	created, err := s.companies.Create(ctx, company.Company{
		CompanyName:       strings.TrimSpace(in.CompanyName),
		Email:             normalizeEmail(in.Email),
		PasswordHash:      hash,
		EstablishmentYear: in.EstablishmentYear,
		ContactNo:         in.ContactNo,
		IndustryType:      in.IndustryType,
		Address:           in.Address,
		LicenseNo:         in.LicenseNo,
		Description:       in.Description,
		ImageURL:          in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	return s.issueToken(created.ID, user.RoleCompany, created.Email, created)
}

// Login authenticates against the account class named by role. A missing
// account and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string, role user.Role) (*AuthResult, error) {
	email = normalizeEmail(email)
	switch role {
	case user.RoleApplicant:
		account, err := s.users.GetByEmail(ctx, email)
		if err != nil || !checkPassword(account.PasswordHash, password) {
			return nil, errInvalidCredentials()
		}
		return s.issueToken(account.ID, user.RoleApplicant, account.Email, account)
	case user.RoleCompany:
		account, err := s.companies.GetByEmail(ctx, email)
		if err != nil || !checkPassword(account.PasswordHash, password) {
			return nil, errInvalidCredentials()
		}
		return s.issueToken(account.ID, user.RoleCompany, account.Email, account)
	default:
		return nil, common.NewValidationError("invalid role", map[string]string{"role": "role must be user or company"})
	}
}

func (s *AuthService) ChangePassword(ctx context.Context, id common.UUID, role user.Role, oldPassword, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	switch role {
	case user.RoleApplicant:
		account, err := s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !checkPassword(account.PasswordHash, oldPassword) {
			return common.NewError(common.CodeUnauthorized, "current password is incorrect", nil)
		}
		return s.users.UpdatePassword(ctx, id, hash)
	case user.RoleCompany:
		account, err := s.companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !checkPassword(account.PasswordHash, oldPassword) {
			return common.NewError(common.CodeUnauthorized, "current password is incorrect", nil)
		}
		return s.companies.UpdatePassword(ctx, id, hash)
	default:
		return common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

func (s *AuthService) issueToken(id common.UUID, role user.Role, email string, profile any) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.Generate(id, role, email)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Role: role, Profile: profile}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func errInvalidCredentials() error {
	return common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
}
