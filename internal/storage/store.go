// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/fachrifaul/paysheet/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with detail; match with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for summary and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateSummary persists a new payment summary with its items.
	// The summary's ID and CreatedAt are populated if unset.
	CreateSummary(ctx context.Context, summary *models.PaymentSummary) error

	// GetSummary retrieves a summary by ID, items in display order.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetSummary(ctx context.Context, id string) (*models.PaymentSummary, error)

	// ListSummaries returns the owner's summaries, newest first, up to limit.
	ListSummaries(ctx context.Context, ownerID string, limit int) ([]*models.PaymentSummary, error)

	// DeleteSummary removes a summary and its items.
	// Returns an error wrapping ErrNotFound if it does not exist.
	DeleteSummary(ctx context.Context, id string) error

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
