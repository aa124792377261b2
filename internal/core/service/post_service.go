package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"microblog/internal/core/domain"
	"microblog/internal/core/repository"
)

type PostService struct {
	posts  repository.PostRepository
	policy *bluemonday.Policy
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{
		posts:  posts,
		policy: bluemonday.StrictPolicy(),
	}
}

// Create sanitizes and persists a new post for the given author. Posts are
// plain text only: all markup is stripped before storage, and a title or body
// that is blank after stripping is rejected.
func (s *PostService) Create(ctx context.Context, title, body string, authorID int64) (*domain.Post, error) {
	title = s.sanitize(title)
	body = s.sanitize(body)

	var messages []string
	if title == "" {
		messages = append(messages, "You must provide a title")
	}
	if body == "" {
		messages = append(messages, "You must provide content")
	}
	if len(messages) > 0 {
		return nil, NewValidationError(messages...)
	}

	post := domain.NewPost(title, body, authorID)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// ListByAuthor returns the author's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error) {
	return s.posts.FindByAuthor(ctx, authorID)
}

// sanitize strips all tags and attributes, then unescapes what the sanitizer
// entity-encoded so the stored value is plain text.
func (s *PostService) sanitize(input string) string {
	stripped := s.policy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(stripped))
}
