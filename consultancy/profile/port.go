package profile

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

type Repository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *Profile) error

	// Update updates an existing profile
	Update(ctx context.Context, id kernel.UserID, profile *Profile) error

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id kernel.UserID) (*Profile, error)

	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Profile, error)

	// Delete deletes a profile by ID
	Delete(ctx context.Context, id kernel.UserID) error

	// List retrieves all profiles with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Profile], error)

	// Exists checks if a profile exists by ID
	Exists(ctx context.Context, id kernel.UserID) (bool, error)

	// Count counts all profiles
	Count(ctx context.Context) (int64, error)

	// SignupsPerDay returns per-day signup counts since the given instant
	SignupsPerDay(ctx context.Context, since time.Time) ([]DateCount, error)
}

// DateCount is one bucket of a per-day aggregate.
type DateCount struct {
	Date  string `db:"date" json:"date"`
	Count int64  `db:"count" json:"count"`
}
