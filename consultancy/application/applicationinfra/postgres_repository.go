package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID        string    `db:"id"`
	UniqueID  string    `db:"application_unique_id"`
	UserID    string    `db:"user_id"`
	JobID     string    `db:"job_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type userRowModel struct {
	ID          string    `db:"id"`
	UpdatedAt   time.Time `db:"updated_at"`
	Status      string    `db:"status"`
	JobID       string    `db:"job_id"`
	Designation string    `db:"designation"`
	JobUniqueID string    `db:"job_unique_id"`
}

type adminRowModel struct {
	ID          string    `db:"id"`
	UniqueID    string    `db:"application_unique_id"`
	UpdatedAt   time.Time `db:"updated_at"`
	Status      string    `db:"status"`
	JobID       string    `db:"job_id"`
	Designation string    `db:"designation"`
	CompanyName string    `db:"company_name"`
	JobUniqueID string    `db:"job_unique_id"`
	UserName    string    `db:"user_name"`
}

func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:        kernel.ApplicationID(m.ID),
		UniqueID:  kernel.UniqueID(m.UniqueID),
		UserID:    kernel.UserID(m.UserID),
		JobID:     kernel.JobID(m.JobID),
		Status:    application.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEntity(app *application.Application) *applicationModel {
	return &applicationModel{
		ID:        string(app.ID),
		UniqueID:  string(app.UniqueID),
		UserID:    string(app.UserID),
		JobID:     string(app.JobID),
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

func (m *userRowModel) toRow() application.UserApplicationRow {
	return application.UserApplicationRow{
		ID:          kernel.ApplicationID(m.ID),
		UpdatedAt:   m.UpdatedAt,
		Status:      application.Status(m.Status),
		JobID:       kernel.JobID(m.JobID),
		Designation: kernel.Designation(m.Designation),
		JobUniqueID: kernel.UniqueID(m.JobUniqueID),
	}
}

func (m *adminRowModel) toRow() application.AdminApplicationRow {
	return application.AdminApplicationRow{
		ID:          kernel.ApplicationID(m.ID),
		UniqueID:    kernel.UniqueID(m.UniqueID),
		UpdatedAt:   m.UpdatedAt,
		Status:      application.Status(m.Status),
		JobID:       kernel.JobID(m.JobID),
		Designation: kernel.Designation(m.Designation),
		CompanyName: kernel.CompanyName(m.CompanyName),
		JobUniqueID: kernel.UniqueID(m.JobUniqueID),
		UserName:    kernel.FullName(m.UserName),
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, application_unique_id, user_id, job_id, status,
			created_at, updated_at
		) VALUES (
			:id, :application_unique_id, :user_id, :job_id, :status,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation, the (user_id, job_id) arbiter
				return application.ErrAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Update persists the mutable fields of an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	model := fromEntity(app)
	model.ID = string(id)

	query := `
		UPDATE applications SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `
		SELECT id, application_unique_id, user_id, job_id, status, created_at, updated_at
		FROM applications
		WHERE id = $1
	`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// FindByUserAndJob retrieves a user's application for a job regardless of
// status. Returns (nil, nil) when none exists.
func (r *PostgresApplicationRepository) FindByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*application.Application, error) {
	query := `
		SELECT id, application_unique_id, user_id, job_id, status, created_at, updated_at
		FROM applications
		WHERE user_id = $1 AND job_id = $2
	`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(userID), string(jobID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application by user and job: %w", err)
	}

	return model.toEntity(), nil
}

// GetDetail retrieves an application joined with full job and applicant fields
func (r *PostgresApplicationRepository) GetDetail(ctx context.Context, id kernel.ApplicationID) (*application.DetailRow, error) {
	query := `
		SELECT
			a.id, a.application_unique_id, a.status, a.created_at, a.updated_at,
			j.designation, j.company_name, j.industry, j.vacancy, j.salary,
			j.benefits, j.skills, j.job_description,
			j.nationality AS job_nationality, j.job_unique_id,
			j.created_at AS job_created_at,
			u.full_name, u.email, u.serial_number, u.phone, u.phone_two,
			u.gender, u.nationality AS user_nationality, u.dob,
			u.professional_status, u.linkedin_username, u.portfolio_url,
			u.profile_image_key, u.resume_key
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN users u ON a.user_id = u.id
		WHERE a.id = $1
	`

	var row application.DetailRow
	err := r.db.GetContext(ctx, &row, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application detail: %w", err)
	}

	return &row, nil
}

// ListForUser retrieves a user's applications joined with job fields
func (r *PostgresApplicationRepository) ListForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.UserApplicationRow], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to count user applications: %w", err)
	}

	query := `
		SELECT
			a.id, a.updated_at, a.status, a.job_id,
			j.designation, j.job_unique_id
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []userRowModel
	err := r.db.SelectContext(ctx, &models, query, string(userID), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list user applications: %w", err)
	}

	rows := make([]application.UserApplicationRow, 0, len(models))
	for _, model := range models {
		rows = append(rows, model.toRow())
	}

	return kernel.NewPaginated(rows, pagination, total), nil
}

// ListForAdmin retrieves all applications joined with job and applicant fields
func (r *PostgresApplicationRepository) ListForAdmin(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[application.AdminApplicationRow], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT
			a.id, a.application_unique_id, a.updated_at, a.status, a.job_id,
			j.designation, j.company_name, j.job_unique_id,
			u.full_name AS user_name
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN users u ON a.user_id = u.id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []adminRowModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	rows := make([]application.AdminApplicationRow, 0, len(models))
	for _, model := range models {
		rows = append(rows, model.toRow())
	}

	return kernel.NewPaginated(rows, pagination, total), nil
}

// Count returns the total number of applications
func (r *PostgresApplicationRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM applications`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}

// CountByStatusSince returns the number of applications in the given status
// created at or after the given instant. The zero time degenerates to an
// all-time count.
func (r *PostgresApplicationRepository) CountByStatusSince(ctx context.Context, status application.Status, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE status = $1 AND created_at >= $2`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(status), since); err != nil {
		return 0, fmt.Errorf("failed to count applications by status: %w", err)
	}

	return count, nil
}

// GraphSince returns per-day application and placement counts from the given
// instant onward
func (r *PostgresApplicationRepository) GraphSince(ctx context.Context, since time.Time) ([]application.GraphPoint, error) {
	query := `
		SELECT
			to_char(created_at::date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS applications,
			COUNT(*) FILTER (WHERE status = 'PLACED') AS placements
		FROM applications
		WHERE created_at >= $1
		GROUP BY created_at::date
		ORDER BY created_at::date
	`

	var points []application.GraphPoint
	if err := r.db.SelectContext(ctx, &points, query, since); err != nil {
		return nil, fmt.Errorf("failed to build application graph: %w", err)
	}

	return points, nil
}
