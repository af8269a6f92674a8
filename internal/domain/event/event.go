package event

import (
	"context"
	"time"

	"careerconnect/internal/common"
)

type CareerEvent struct {
	ID            common.UUID `json:"id"`
	CompanyID     common.UUID `json:"company_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Location      string      `json:"location,omitempty"`
	StartsAt      time.Time   `json:"starts_at"`
	CoverImageURL string      `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, item CareerEvent) (*CareerEvent, error)
	GetByCompany(ctx context.Context, id, companyID common.UUID) (*CareerEvent, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]CareerEvent, error)
	Update(ctx context.Context, item CareerEvent) (*CareerEvent, error)
	Delete(ctx context.Context, id, companyID common.UUID) error
}
