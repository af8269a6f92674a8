package user

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context) (int, error)
}
