package notification

import (
	"context"
	"time"

	"careerconnect/internal/common"
)

type Notification struct {
	ID        common.UUID `json:"id"`
	UserID    common.UUID `json:"user_id"`
	Message   string      `json:"message"`
	IsRead    bool        `json:"is_read"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, item Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID common.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID common.UUID) error
}
