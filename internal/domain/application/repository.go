package application

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	// Create inserts the application. The storage layer enforces uniqueness
	// over (applicant_id, job_id) and reports a conflict when violated.
	Create(ctx context.Context, app Application) (*Application, error)
	FindByApplicantAndJob(ctx context.Context, applicantID, jobID common.UUID) (*Application, error)
	GetForApplicant(ctx context.Context, id, applicantID common.UUID) (*Application, error)
	GetForCompany(ctx context.Context, id, companyID common.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]ApplicantView, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]CompanyView, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	Delete(ctx context.Context, id common.UUID) error
}
