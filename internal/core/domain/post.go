package domain

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	AuthorID  int64     `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
}

func NewPost(title, body string, authorID int64) *Post {
	return &Post{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
}
