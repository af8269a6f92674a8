package app

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/forum"
)

type fakeQuestionRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*forum.Question
	order []common.UUID
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{items: make(map[common.UUID]*forum.Question)}
}

func (r *fakeQuestionRepo) Create(_ context.Context, question forum.Question) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	question.ID = common.NewUUID()
	r.items[question.ID] = &question
	r.order = append(r.order, question.ID)
	stored := question
	return &stored, nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id common.UUID) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "question not found", nil)
	}
	stored := *existing
	return &stored, nil
}

func (r *fakeQuestionRepo) List(_ context.Context) ([]forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]forum.Question, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.items[r.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Upvotes > out[j].Upvotes })
	return out, nil
}

func (r *fakeQuestionRepo) AddReply(_ context.Context, questionID common.UUID, reply forum.Reply) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[questionID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "question not found", nil)
	}
	reply.ID = common.NewUUID()
	existing.Replies = append(existing.Replies, reply)
	stored := *existing
	return &stored, nil
}

func (r *fakeQuestionRepo) Upvote(_ context.Context, questionID, userID common.UUID) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[questionID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "question not found", nil)
	}
	for _, voter := range existing.UpvotedBy {
		if voter == userID.String() {
			return nil, common.NewError(common.CodeConflict, "You already upvoted this question", nil)
		}
	}
	existing.UpvotedBy = append(existing.UpvotedBy, userID.String())
	existing.Upvotes++
	stored := *existing
	return &stored, nil
}

func TestAskRequiresTitleAndBody(t *testing.T) {
	service := NewForumService(newFakeQuestionRepo())

	_, err := service.Ask(context.Background(), common.NewUUID(), "Karim", "   ", "some body")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	_, err = service.Ask(context.Background(), common.NewUUID(), "Karim", "A title", "")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestAskTrimsFields(t *testing.T) {
	service := NewForumService(newFakeQuestionRepo())

	created, err := service.Ask(context.Background(), common.NewUUID(), "Karim", "  How to prepare for interviews?  ", "  Any tips?  ")
	require.NoError(t, err)
	assert.Equal(t, "How to prepare for interviews?", created.Title)
	assert.Equal(t, "Any tips?", created.Body)
}

func TestReplyRequiresText(t *testing.T) {
	repo := newFakeQuestionRepo()
	service := NewForumService(repo)
	created, err := service.Ask(context.Background(), common.NewUUID(), "Karim", "Title", "Body")
	require.NoError(t, err)

	_, err = service.Reply(context.Background(), created.ID, common.NewUUID(), "Rahim", "   ")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	updated, err := service.Reply(context.Background(), created.ID, common.NewUUID(), "Rahim", "Practice a lot")
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	assert.Equal(t, "Practice a lot", updated.Replies[0].Text)
}

func TestReplyToMissingQuestionIsNotFound(t *testing.T) {
	service := NewForumService(newFakeQuestionRepo())

	_, err := service.Reply(context.Background(), common.NewUUID(), common.NewUUID(), "Rahim", "hello")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestUpvoteOncePerUser(t *testing.T) {
	repo := newFakeQuestionRepo()
	service := NewForumService(repo)
	created, err := service.Ask(context.Background(), common.NewUUID(), "Karim", "Title", "Body")
	require.NoError(t, err)
	voter := common.NewUUID()

	updated, err := service.Upvote(context.Background(), created.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Upvotes)

	_, err = service.Upvote(context.Background(), created.ID, voter)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
	assert.Contains(t, err.Error(), "You already upvoted this question")

	updated, err = service.Upvote(context.Background(), created.ID, common.NewUUID())
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Upvotes)
}

func TestListOrdersByUpvotes(t *testing.T) {
	repo := newFakeQuestionRepo()
	service := NewForumService(repo)

	first, err := service.Ask(context.Background(), common.NewUUID(), "A", "First", "Body")
	require.NoError(t, err)
	second, err := service.Ask(context.Background(), common.NewUUID(), "B", "Second", "Body")
	require.NoError(t, err)

	_, err = service.Upvote(context.Background(), first.ID, common.NewUUID())
	require.NoError(t, err)

	items, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}
