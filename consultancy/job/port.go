package job

import (
	"context"

	"github.com/careerlane/careerlane/pkg/kernel"
)

type Repository interface {
	// Create persists a new job
	Create(ctx context.Context, j *Job) error

	// Update persists the mutable fields of an existing job
	Update(ctx context.Context, id kernel.JobID, j *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete removes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListForUser retrieves all jobs annotated with whether the given user
	// holds a live application for each
	ListForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[UserJobRow], error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// Count returns the total number of jobs
	Count(ctx context.Context) (int64, error)
}
