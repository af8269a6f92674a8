package app

import (
	"context"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
)

type JobService struct {
	repo job.Repository
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	return s.repo.Create(ctx, posting)
}

func (s *JobService) ListAll(ctx context.Context) ([]job.WithCompany, error) {
	return s.repo.ListAll(ctx)
}

func (s *JobService) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *JobService) GetByCompany(ctx context.Context, id, companyID common.UUID) (*job.Job, error) {
	return s.repo.GetByCompany(ctx, id, companyID)
}

func (s *JobService) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	return s.repo.Update(ctx, posting)
}

func (s *JobService) Delete(ctx context.Context, id, companyID common.UUID) error {
	return s.repo.Delete(ctx, id, companyID)
}
