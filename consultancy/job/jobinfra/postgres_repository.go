package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type jobModel struct {
	ID          string    `db:"id"`
	UniqueID    string    `db:"job_unique_id"`
	CompanyName string    `db:"company_name"`
	Industry    string    `db:"industry"`
	Designation string    `db:"designation"`
	Vacancy     int       `db:"vacancy"`
	Salary      int64     `db:"salary"`
	Benefits    string    `db:"benefits"`
	Skills      string    `db:"skills"`
	Description string    `db:"job_description"`
	Nationality string    `db:"nationality"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type userJobRowModel struct {
	jobModel
	Applied bool `db:"applied"`
}

func (m *jobModel) toEntity() *job.Job {
	return &job.Job{
		ID:          kernel.JobID(m.ID),
		UniqueID:    kernel.UniqueID(m.UniqueID),
		CompanyName: kernel.CompanyName(m.CompanyName),
		Industry:    kernel.Industry(m.Industry),
		Designation: kernel.Designation(m.Designation),
		Vacancy:     m.Vacancy,
		Salary:      m.Salary,
		Benefits:    m.Benefits,
		Skills:      m.Skills,
		Description: kernel.JobDescription(m.Description),
		Nationality: kernel.Nationality(m.Nationality),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (m *userJobRowModel) toRow() job.UserJobRow {
	return job.UserJobRow{
		ID:          kernel.JobID(m.ID),
		UniqueID:    kernel.UniqueID(m.UniqueID),
		CompanyName: kernel.CompanyName(m.CompanyName),
		Industry:    kernel.Industry(m.Industry),
		Designation: kernel.Designation(m.Designation),
		Vacancy:     m.Vacancy,
		Salary:      m.Salary,
		Benefits:    m.Benefits,
		Skills:      m.Skills,
		Description: kernel.JobDescription(m.Description),
		Nationality: kernel.Nationality(m.Nationality),
		CreatedAt:   m.CreatedAt,
		Applied:     m.Applied,
	}
}

func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:          string(j.ID),
		UniqueID:    string(j.UniqueID),
		CompanyName: string(j.CompanyName),
		Industry:    string(j.Industry),
		Designation: string(j.Designation),
		Vacancy:     j.Vacancy,
		Salary:      j.Salary,
		Benefits:    j.Benefits,
		Skills:      j.Skills,
		Description: string(j.Description),
		Nationality: string(j.Nationality),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new job
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	model := fromEntity(j)

	query := `
		INSERT INTO jobs (
			id, job_unique_id, company_name, industry, designation,
			vacancy, salary, benefits, skills, job_description, nationality,
			created_at, updated_at
		) VALUES (
			:id, :job_unique_id, :company_name, :industry, :designation,
			:vacancy, :salary, :benefits, :skills, :job_description, :nationality,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return job.ErrJobExists()
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update persists the mutable fields of an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	model := fromEntity(j)
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			company_name = :company_name,
			industry = :industry,
			designation = :designation,
			vacancy = :vacancy,
			salary = :salary,
			benefits = :benefits,
			skills = :skills,
			job_description = :job_description,
			nationality = :nationality,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT id, job_unique_id, company_name, industry, designation,
		       vacancy, salary, benefits, skills, job_description, nationality,
		       created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete removes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs, newest first
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `
		SELECT id, job_unique_id, company_name, industry, designation,
		       vacancy, salary, benefits, skills, job_description, nationality,
		       created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// ListForUser retrieves all jobs annotated with whether the user holds a
// live application. A cancelled application counts as not applied.
func (r *PostgresJobRepository) ListForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.UserJobRow], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `
		SELECT j.id, j.job_unique_id, j.company_name, j.industry, j.designation,
		       j.vacancy, j.salary, j.benefits, j.skills, j.job_description,
		       j.nationality, j.created_at, j.updated_at,
		       EXISTS (
		           SELECT 1 FROM applications a
		           WHERE a.job_id = j.id
		             AND a.user_id = $1
		             AND a.status <> 'CANCELLED_BY_USER'
		       ) AS applied
		FROM jobs j
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []userJobRowModel
	err := r.db.SelectContext(ctx, &models, query, string(userID), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for user: %w", err)
	}

	rows := make([]job.UserJobRow, 0, len(models))
	for _, model := range models {
		rows = append(rows, model.toRow())
	}

	return kernel.NewPaginated(rows, pagination, total), nil
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// Count returns the total number of jobs
func (r *PostgresJobRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	return count, nil
}
