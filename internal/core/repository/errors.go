package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when an insert hits the unique
	// constraint on users.username.
	ErrDuplicateUsername = errors.New("username already exists")
)
