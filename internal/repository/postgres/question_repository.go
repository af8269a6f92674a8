package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/forum"
)

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question forum.Question) (*forum.Question, error) {
	question.ID = common.NewUUID()
	now := time.Now().UTC()
	question.CreatedAt = now
	question.UpdatedAt = now
	question.UpvotedBy = []string{}
	question.Replies = []forum.Reply{}
	_, err := r.db.ExecContext(ctx, `INSERT INTO questions (id, author_id, author_name, title, body, upvotes, upvoted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, '{}', $6, $7)`,
		question.ID, question.AuthorID, question.AuthorName, question.Title, question.Body,
		question.CreatedAt, question.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create question", err)
	}
	return &question, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id common.UUID) (*forum.Question, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, author_id, author_name, title, body, upvotes, upvoted_by, created_at, updated_at
		FROM questions WHERE id = $1`, id)
	question, err := scanQuestion(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachReplies(ctx, []*forum.Question{question}); err != nil {
		return nil, err
	}
	return question, nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]forum.Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, author_id, author_name, title, body, upvotes, upvoted_by, created_at, updated_at
		FROM questions ORDER BY upvotes DESC, created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list questions", err)
	}
	defer rows.Close()
	var questions []*forum.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if err := r.attachReplies(ctx, questions); err != nil {
		return nil, err
	}
	items := make([]forum.Question, 0, len(questions))
	for _, question := range questions {
		items = append(items, *question)
	}
	return items, nil
}

func (r *QuestionRepository) AddReply(ctx context.Context, questionID common.UUID, reply forum.Reply) (*forum.Question, error) {
	reply.ID = common.NewUUID()
	reply.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `INSERT INTO question_replies (id, question_id, author_id, author_name, text, created_at)
		SELECT $1, $2, $3, $4, $5, $6 WHERE EXISTS (SELECT 1 FROM questions WHERE id = $2)`,
		reply.ID, questionID, reply.AuthorID, reply.AuthorName, reply.Text, reply.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to add reply", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "question not found", nil)
	}
	return r.GetByID(ctx, questionID)
}

func (r *QuestionRepository) Upvote(ctx context.Context, questionID, userID common.UUID) (*forum.Question, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE questions
		SET upvotes = upvotes + 1, upvoted_by = array_append(upvoted_by, $2), updated_at = $3
		WHERE id = $1 AND NOT ($2 = ANY(upvoted_by))`,
		questionID, userID.String(), time.Now().UTC())
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upvote question", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		if _, getErr := r.GetByID(ctx, questionID); getErr != nil {
			return nil, getErr
		}
		return nil, common.NewError(common.CodeConflict, "You already upvoted this question", nil)
	}
	return r.GetByID(ctx, questionID)
}

func (r *QuestionRepository) attachReplies(ctx context.Context, questions []*forum.Question) error {
	byID := make(map[common.UUID]*forum.Question, len(questions))
	ids := make([]string, 0, len(questions))
	for _, question := range questions {
		question.Replies = []forum.Reply{}
		byID[question.ID] = question
		ids = append(ids, question.ID.String())
	}
	if len(ids) == 0 {
		return nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT question_id, id, author_id, author_name, text, created_at
		FROM question_replies WHERE question_id = ANY($1) ORDER BY created_at ASC`, pq.Array(ids))
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to load replies", err)
	}
	defer rows.Close()
	for rows.Next() {
		var questionID common.UUID
		var reply forum.Reply
		if err := rows.Scan(&questionID, &reply.ID, &reply.AuthorID, &reply.AuthorName, &reply.Text, &reply.CreatedAt); err != nil {
			return common.NewError(common.CodeInternal, "failed to scan reply", err)
		}
		if question, ok := byID[questionID]; ok {
			question.Replies = append(question.Replies, reply)
		}
	}
	return nil
}

func scanQuestion(row rowScanner) (*forum.Question, error) {
	var question forum.Question
	err := row.Scan(&question.ID, &question.AuthorID, &question.AuthorName, &question.Title,
		&question.Body, &question.Upvotes, pq.Array(&question.UpvotedBy),
		&question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "question not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load question", err)
	}
	return &question, nil
}
