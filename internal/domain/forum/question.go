package forum

import (
	"context"
	"time"

	"careerconnect/internal/common"
)

type Reply struct {
	ID         common.UUID `json:"id"`
	AuthorID   common.UUID `json:"author_id"`
	AuthorName string      `json:"author_name,omitempty"`
	Text       string      `json:"text"`
	CreatedAt  time.Time   `json:"created_at"`
}

type Question struct {
	ID         common.UUID `json:"id"`
	AuthorID   common.UUID `json:"author_id"`
	AuthorName string      `json:"author_name,omitempty"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	Upvotes    int         `json:"upvotes"`
	UpvotedBy  []string    `json:"upvoted_by"`
	Replies    []Reply     `json:"replies"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, question Question) (*Question, error)
	GetByID(ctx context.Context, id common.UUID) (*Question, error)
	// List returns questions most-upvoted first, ties broken newest-first.
	List(ctx context.Context) ([]Question, error)
	AddReply(ctx context.Context, questionID common.UUID, reply Reply) (*Question, error)
	// Upvote increments once per user; a repeat upvote reports a conflict.
	Upvote(ctx context.Context, questionID, userID common.UUID) (*Question, error)
}
