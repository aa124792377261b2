package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"microblog/internal/core/domain"
	"microblog/internal/core/repository"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (title, body, author_id, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Body,
		post.AuthorID,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	post.ID = id

	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT id, title, body, author_id, created_at
		FROM posts
		WHERE id = ?
	`
	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) FindByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error) {
	query := `
		SELECT id, title, body, author_id, created_at
		FROM posts
		WHERE author_id = ?
		ORDER BY created_at DESC, id DESC
	`
	var posts []*domain.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT id, title, body, author_id, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`
	var posts []*domain.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
