package app

import (
	"context"
	"strings"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/event"
)

type EventService struct {
	repo event.Repository
}

func NewEventService(repo event.Repository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, item event.CareerEvent) (*event.CareerEvent, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, common.NewValidationError("title is required", map[string]string{"title": "required"})
	}
	return s.repo.Create(ctx, item)
}

func (s *EventService) ListByCompany(ctx context.Context, companyID common.UUID) ([]event.CareerEvent, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *EventService) GetByCompany(ctx context.Context, id, companyID common.UUID) (*event.CareerEvent, error) {
	return s.repo.GetByCompany(ctx, id, companyID)
}

func (s *EventService) Update(ctx context.Context, item event.CareerEvent) (*event.CareerEvent, error) {
	return s.repo.Update(ctx, item)
}

func (s *EventService) Delete(ctx context.Context, id, companyID common.UUID) error {
	return s.repo.Delete(ctx, id, companyID)
}
