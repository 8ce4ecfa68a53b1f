package application

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

type Repository interface {
	// Create persists a new application
	Create(ctx context.Context, app *Application) error

	// Update persists the mutable fields of an existing application
	Update(ctx context.Context, id kernel.ApplicationID, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// FindByUserAndJob retrieves the single application a user holds for a
	// job, regardless of status. Returns (nil, nil) when none exists.
	FindByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*Application, error)

	// GetDetail retrieves an application joined with full job and applicant
	// fields. File fields come back as storage keys, not URLs.
	GetDetail(ctx context.Context, id kernel.ApplicationID) (*DetailRow, error)

	// ListForUser retrieves a user's applications joined with job fields,
	// newest first
	ListForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[UserApplicationRow], error)

	// ListForAdmin retrieves all applications joined with job and applicant
	// fields, newest first
	ListForAdmin(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[AdminApplicationRow], error)

	// Count returns the total number of applications
	Count(ctx context.Context) (int64, error)

	// CountByStatusSince returns the number of applications in the given
	// status created at or after the given instant. A zero since counts
	// across all time.
	CountByStatusSince(ctx context.Context, status Status, since time.Time) (int64, error)

	// GraphSince returns per-day application and placement counts from the
	// given instant onward
	GraphSince(ctx context.Context, since time.Time) ([]GraphPoint, error)
}

// DetailRow is the flat joined projection behind GetDetail. The service layer
// turns it into a DetailResponse after resolving signed URLs.
type DetailRow struct {
	ID        string    `db:"id"`
	UniqueID  string    `db:"application_unique_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	JobDesignation string    `db:"designation"`
	CompanyName    string    `db:"company_name"`
	Industry       string    `db:"industry"`
	Vacancy        int       `db:"vacancy"`
	Salary         int64     `db:"salary"`
	Benefits       string    `db:"benefits"`
	Skills         string    `db:"skills"`
	JobDescription string    `db:"job_description"`
	JobNationality string    `db:"job_nationality"`
	JobUniqueID    string    `db:"job_unique_id"`
	JobCreatedAt   time.Time `db:"job_created_at"`

	FullName           string     `db:"full_name"`
	Email              string     `db:"email"`
	SerialNumber       string     `db:"serial_number"`
	Phone              string     `db:"phone"`
	PhoneTwo           string     `db:"phone_two"`
	Gender             string     `db:"gender"`
	UserNationality    string     `db:"user_nationality"`
	DOB                *time.Time `db:"dob"`
	ProfessionalStatus string     `db:"professional_status"`
	LinkedInUsername   string     `db:"linkedin_username"`
	PortfolioURL       string     `db:"portfolio_url"`
	ProfileImageKey    string     `db:"profile_image_key"`
	ResumeKey          string     `db:"resume_key"`
}
