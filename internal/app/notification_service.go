package app

import (
	"context"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/notification"
)

type NotificationService struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID common.UUID) ([]notification.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID common.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}
