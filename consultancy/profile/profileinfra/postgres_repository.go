package profileinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresProfileRepository implements profile.Repository using PostgreSQL
type PostgresProfileRepository struct {
	db *sqlx.DB
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository
func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type profileModel struct {
	ID                 string     `db:"id"`
	SerialNumber       string     `db:"serial_number"`
	FullName           string     `db:"full_name"`
	Email              string     `db:"email"`
	Role               string     `db:"role"`
	Phone              string     `db:"phone"`
	PhoneTwo           string     `db:"phone_two"`
	Gender             string     `db:"gender"`
	Nationality        string     `db:"nationality"`
	DOB                *time.Time `db:"dob"`
	ProfessionalStatus string     `db:"professional_status"`
	LinkedInUsername   string     `db:"linkedin_username"`
	PortfolioURL       string     `db:"portfolio_url"`
	ProfileImageKey    string     `db:"profile_image_key"`
	ResumeKey          string     `db:"resume_key"`
	IsBlocked          bool       `db:"is_blocked"`
	IsVerified         bool       `db:"is_verified"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (m *profileModel) toEntity() *profile.Profile {
	return &profile.Profile{
		ID:                 kernel.UserID(m.ID),
		SerialNumber:       kernel.UniqueID(m.SerialNumber),
		FullName:           kernel.FullName(m.FullName),
		Email:              kernel.Email(m.Email),
		Role:               auth.Role(m.Role),
		Phone:              kernel.Phone(m.Phone),
		PhoneTwo:           kernel.Phone(m.PhoneTwo),
		Gender:             kernel.Gender(m.Gender),
		Nationality:        kernel.Nationality(m.Nationality),
		DOB:                m.DOB,
		ProfessionalStatus: m.ProfessionalStatus,
		LinkedInUsername:   m.LinkedInUsername,
		PortfolioURL:       m.PortfolioURL,
		ProfileImageKey:    kernel.StorageKey(m.ProfileImageKey),
		ResumeKey:          kernel.StorageKey(m.ResumeKey),
		IsBlocked:          m.IsBlocked,
		IsVerified:         m.IsVerified,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromEntity(p *profile.Profile) *profileModel {
	return &profileModel{
		ID:                 string(p.ID),
		SerialNumber:       string(p.SerialNumber),
		FullName:           string(p.FullName),
		Email:              string(p.Email),
		Role:               string(p.Role),
		Phone:              string(p.Phone),
		PhoneTwo:           string(p.PhoneTwo),
		Gender:             string(p.Gender),
		Nationality:        string(p.Nationality),
		DOB:                p.DOB,
		ProfessionalStatus: p.ProfessionalStatus,
		LinkedInUsername:   p.LinkedInUsername,
		PortfolioURL:       p.PortfolioURL,
		ProfileImageKey:    string(p.ProfileImageKey),
		ResumeKey:          string(p.ResumeKey),
		IsBlocked:          p.IsBlocked,
		IsVerified:         p.IsVerified,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

const profileColumns = `
	id, serial_number, full_name, email, role, phone, phone_two, gender,
	nationality, dob, professional_status, linkedin_username, portfolio_url,
	profile_image_key, resume_key, is_blocked, is_verified,
	created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	model := fromEntity(p)

	query := `
		INSERT INTO users (
			id, serial_number, full_name, email, role, phone, phone_two,
			gender, nationality, dob, professional_status, linkedin_username,
			portfolio_url, profile_image_key, resume_key, is_blocked,
			is_verified, created_at, updated_at
		) VALUES (
			:id, :serial_number, :full_name, :email, :role, :phone, :phone_two,
			:gender, :nationality, :dob, :professional_status, :linkedin_username,
			:portfolio_url, :profile_image_key, :resume_key, :is_blocked,
			:is_verified, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return profile.ErrEmailTaken()
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update updates an existing profile
func (r *PostgresProfileRepository) Update(ctx context.Context, id kernel.UserID, p *profile.Profile) error {
	model := fromEntity(p)
	model.ID = string(id)

	query := `
		UPDATE users SET
			full_name = :full_name,
			role = :role,
			phone = :phone,
			phone_two = :phone_two,
			gender = :gender,
			nationality = :nationality,
			dob = :dob,
			professional_status = :professional_status,
			linkedin_username = :linkedin_username,
			portfolio_url = :portfolio_url,
			profile_image_key = :profile_image_key,
			resume_key = :resume_key,
			is_blocked = :is_blocked,
			is_verified = :is_verified,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return profile.ErrProfileNotFound()
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.UserID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	var model profileModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves a profile by email
func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email kernel.Email) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE email = $1`

	var model profileModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a profile by ID
func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.UserID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return profile.ErrProfileNotFound()
	}

	return nil
}

// List retrieves all profiles with pagination, newest first
func (r *PostgresProfileRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[profile.Profile], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM users`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	query := `
		SELECT ` + profileColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []profileModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	entities := make([]profile.Profile, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// Exists checks if a profile exists by ID
func (r *PostgresProfileRepository) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}

	return exists, nil
}

// Count counts all profiles
func (r *PostgresProfileRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// SignupsPerDay returns per-day signup counts since the given instant
func (r *PostgresProfileRepository) SignupsPerDay(ctx context.Context, since time.Time) ([]profile.DateCount, error) {
	query := `
		SELECT
			to_char(created_at::date, 'YYYY-MM-DD') AS date,
			COUNT(*) AS count
		FROM users
		WHERE created_at >= $1
		GROUP BY created_at::date
		ORDER BY created_at::date
	`

	var counts []profile.DateCount
	if err := r.db.SelectContext(ctx, &counts, query, since); err != nil {
		return nil, fmt.Errorf("failed to aggregate signups: %w", err)
	}

	return counts, nil
}
