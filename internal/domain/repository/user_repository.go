// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"smokebreak/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the local cache operations for users.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDs retrieves the users whose IDs are listed; unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error)

	// FindOnline lists users currently marked online.
	FindOnline(ctx context.Context) ([]*entity.User, error)

	// FindByDepartment lists users of one department.
	FindByDepartment(ctx context.Context, department string) ([]*entity.User, error)

	// Departments lists distinct non-empty departments, alphabetically.
	Departments(ctx context.Context) ([]string, error)

	// Upsert inserts the user or replaces the row with the same ID.
	Upsert(ctx context.Context, user *entity.User) error

	// SetOnline updates the online flag.
	SetOnline(ctx context.Context, id string, online bool) error

	// SetFCMToken replaces the push token.
	SetFCMToken(ctx context.Context, id, token string) error

	// Delete removes the user; membership rows go with it.
	Delete(ctx context.Context, id string) error

	// Count returns the number of cached users.
	Count(ctx context.Context) (int64, error)
}
