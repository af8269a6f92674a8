package job

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*WithCompany, error)
	GetByCompany(ctx context.Context, id, companyID common.UUID) (*Job, error)
	ListAll(ctx context.Context) ([]WithCompany, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Job, error)
	Update(ctx context.Context, posting Job) (*Job, error)
	Delete(ctx context.Context, id, companyID common.UUID) error
}
