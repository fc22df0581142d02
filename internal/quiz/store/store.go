package store

import (
	"context"
	"errors"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and it is injected into the services so tests can substitute an
// in-memory database.
type Store interface {
	Users() Users
	Questions() Questions
	Results() Results

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during registration and login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken; the UNIQUE
	// constraint is the authority for duplicate detection.
	CreateUser(ctx context.Context, u domain.User) error
}

type Questions interface {
	// ListQuestions returns every question in storage order. The order is
	// stable across calls while the table is unchanged.
	ListQuestions(ctx context.Context) ([]domain.Question, error)

	// CountQuestions returns the number of questions available.
	CountQuestions(ctx context.Context) (int, error)
}

type Results interface {
	// CreateResult appends a finished quiz score.
	CreateResult(ctx context.Context, res domain.Result) error

	// ListResultsByUser returns a user's results, newest first. Not exposed
	// over HTTP; used for housekeeping and tests.
	ListResultsByUser(ctx context.Context, userID string) ([]domain.Result, error)
}
