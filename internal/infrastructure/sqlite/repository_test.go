package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"microblog/internal/core/domain"
	"microblog/internal/core/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestUserRepository_CreateBackfillsID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := domain.NewUser("alice", "hash")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected ID to be backfilled after insert")
	}

	second := domain.NewUser("bob", "hash")
	if err := repo.Create(context.Background(), second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID <= user.ID {
		t.Errorf("expected autoincrement ID, got %d after %d", second.ID, user.ID)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(context.Background(), domain.NewUser("alice", "hash")); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(context.Background(), domain.NewUser("alice", "other"))
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	created := domain.NewUser("alice", "hash")
	if err := repo.Create(context.Background(), created); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID || found.Username != "alice" || found.Password != "hash" {
		t.Errorf("unexpected user: %+v", found)
	}

	// Lookups are exact and case-sensitive.
	if _, err := repo.FindByUsername(context.Background(), "Alice"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for different case, got %v", err)
	}

	if _, err := repo.FindByUsername(context.Background(), "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	for _, name := range []string{"carol", "alice", "bob"} {
		if err := repo.Create(context.Background(), domain.NewUser(name, "hash")); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, want := range []string{"alice", "bob", "carol"} {
		if users[i].Username != want {
			t.Errorf("users[%d]: expected %s, got %s", i, want, users[i].Username)
		}
	}
}

func TestPostRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	author := domain.NewUser("alice", "hash")
	if err := users.Create(context.Background(), author); err != nil {
		t.Fatalf("create author: %v", err)
	}

	post := domain.NewPost("A title", "A body", author.ID)
	if err := posts.Create(context.Background(), post); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == 0 {
		t.Error("expected ID to be backfilled after insert")
	}

	found, err := posts.FindByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Title != "A title" || found.Body != "A body" || found.AuthorID != author.ID {
		t.Errorf("unexpected post: %+v", found)
	}

	if _, err := posts.FindByID(context.Background(), 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_ForeignKeyEnforced(t *testing.T) {
	posts := NewPostRepository(newTestDB(t))

	err := posts.Create(context.Background(), domain.NewPost("title", "body", 42))
	if err == nil {
		t.Error("expected foreign key violation for unknown author")
	}
}

func TestPostRepository_FindByAuthorNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	alice := domain.NewUser("alice", "hash")
	bob := domain.NewUser("bob", "hash")
	for _, u := range []*domain.User{alice, bob} {
		if err := users.Create(context.Background(), u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	seed := []*domain.Post{
		{Title: "old", Body: "b", AuthorID: alice.ID, CreatedAt: base},
		{Title: "new", Body: "b", AuthorID: alice.ID, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "mid", Body: "b", AuthorID: alice.ID, CreatedAt: base.Add(1 * time.Hour)},
		{Title: "other", Body: "b", AuthorID: bob.ID, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, p := range seed {
		if err := posts.Create(context.Background(), p); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	got, err := posts.FindByAuthor(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("find by author: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(got))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if got[i].Title != want {
			t.Errorf("posts[%d]: expected %s, got %s", i, want, got[i].Title)
		}
	}

	all, err := posts.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 posts, got %d", len(all))
	}
	if all[0].Title != "other" {
		t.Errorf("expected newest post first, got %s", all[0].Title)
	}
}
