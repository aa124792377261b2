package repository

import (
	"context"

	"microblog/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}
