package company

import (
	"context"
	"time"

	"careerconnect/internal/common"
)

type Company struct {
	ID                common.UUID `json:"id"`
	CompanyName       string      `json:"company_name"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"-"`
	EstablishmentYear int         `json:"establishment_year,omitempty"`
	ContactNo         string      `json:"contact_no,omitempty"`
	IndustryType      string      `json:"industry_type,omitempty"`
	Address           string      `json:"address,omitempty"`
	LicenseNo         string      `json:"license_no,omitempty"`
	ImageURL          string      `json:"image_url,omitempty"`
	Description       string      `json:"description,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, account Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	GetByEmail(ctx context.Context, email string) (*Company, error)
	UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error
	Count(ctx context.Context) (int, error)
}
