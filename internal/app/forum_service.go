package app

import (
	"context"
	"strings"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/forum"
)

type ForumService struct {
	repo forum.Repository
}

func NewForumService(repo forum.Repository) *ForumService {
	return &ForumService{repo: repo}
}

func (s *ForumService) List(ctx context.Context) ([]forum.Question, error) {
	return s.repo.List(ctx)
}

func (s *ForumService) Ask(ctx context.Context, authorID common.UUID, authorName, title, body string) (*forum.Question, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, common.NewValidationError("title and body are required", map[string]string{
			"title": "required", "body": "required",
		})
	}
	return s.repo.Create(ctx, forum.Question{
		AuthorID:   authorID,
		AuthorName: authorName,
		Title:      title,
		Body:       body,
	})
}

func (s *ForumService) Reply(ctx context.Context, questionID, authorID common.UUID, authorName, text string) (*forum.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.NewValidationError("text is required", map[string]string{"text": "required"})
	}
	return s.repo.AddReply(ctx, questionID, forum.Reply{
		AuthorID:   authorID,
		AuthorName: authorName,
		Text:       text,
	})
}

func (s *ForumService) Upvote(ctx context.Context, questionID, userID common.UUID) (*forum.Question, error) {
	return s.repo.Upvote(ctx, questionID, userID)
}
