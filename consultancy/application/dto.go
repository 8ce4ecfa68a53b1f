package application

import (
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

// ApplyRequest - DTO for creating (or idempotently re-confirming) an application
type ApplyRequest struct {
	UserID kernel.UserID `json:"userId" validate:"required"`
	JobID  kernel.JobID  `json:"jobId" validate:"required"`
}

// ApplyResponse - the minimal acknowledgment returned to the user
type ApplyResponse struct {
	JobID  kernel.JobID `json:"jobId"`
	Status Status       `json:"status"`
}

// UpdateStatusRequest - DTO for the user-facing status change (cancel / re-apply)
type UpdateStatusRequest struct {
	ApplicationID kernel.ApplicationID `json:"_id" validate:"required"`
	UserID        kernel.UserID        `json:"userId" validate:"required"`
	Status        Status               `json:"status" validate:"required"`
}

// OverrideStatusRequest - DTO for the admin status override
type OverrideStatusRequest struct {
	ApplicationID kernel.ApplicationID `json:"_id" validate:"required"`
	Status        Status               `json:"status" validate:"required"`
}

// UserApplicationRow - one row of the user's application listing, joined
// with job fields
type UserApplicationRow struct {
	ID          kernel.ApplicationID `json:"_id"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Status      Status               `json:"status"`
	JobID       kernel.JobID         `json:"jobId"`
	Designation kernel.Designation   `json:"designation"`
	JobUniqueID kernel.UniqueID      `json:"jobUniqueId"`
}

// AdminApplicationRow - one row of the admin listing, additionally joined
// with company and applicant fields
type AdminApplicationRow struct {
	ID          kernel.ApplicationID `json:"_id"`
	UniqueID    kernel.UniqueID      `json:"applicationUniqueId"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Status      Status               `json:"status"`
	JobID       kernel.JobID         `json:"jobId"`
	Designation kernel.Designation   `json:"designation"`
	CompanyName kernel.CompanyName   `json:"companyName"`
	JobUniqueID kernel.UniqueID      `json:"jobUniqueId"`
	UserName    kernel.FullName      `json:"userName"`
}

// JobDetail - full job fields of the denormalized detail response
type JobDetail struct {
	Designation kernel.Designation    `json:"designation"`
	CompanyName kernel.CompanyName    `json:"companyName"`
	Industry    kernel.Industry       `json:"industry"`
	Vacancy     int                   `json:"vacancy"`
	Salary      int64                 `json:"salary"`
	Benefits    string                `json:"benefits"`
	Skills      string                `json:"skills"`
	Description kernel.JobDescription `json:"jobDescription"`
	Nationality kernel.Nationality    `json:"nationality"`
	JobUniqueID kernel.UniqueID       `json:"jobUniqueId"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// ApplicantDetail - full user fields of the denormalized detail response.
// ProfileImageURL and ResumeURL are signed, time-limited links resolved
// through the signed-URL cache; empty when the user has not uploaded them.
type ApplicantDetail struct {
	FullName           kernel.FullName    `json:"fullName"`
	Email              kernel.Email       `json:"email"`
	SerialNumber       kernel.UniqueID    `json:"serialNumber"`
	Phone              kernel.Phone       `json:"phone"`
	PhoneTwo           kernel.Phone       `json:"phoneTwo"`
	Gender             kernel.Gender      `json:"gender"`
	Nationality        kernel.Nationality `json:"nationality"`
	DOB                *time.Time         `json:"dob,omitempty"`
	ProfessionalStatus string             `json:"professionalStatus"`
	LinkedInUsername   string             `json:"linkedInUsername"`
	PortfolioURL       string             `json:"portfolioUrl"`
	ProfileImageURL    string             `json:"profileImage,omitempty"`
	ResumeURL          string             `json:"resume,omitempty"`
}

// DetailResponse - one application joined with full job and applicant detail
type DetailResponse struct {
	ID        kernel.ApplicationID `json:"_id"`
	UniqueID  kernel.UniqueID      `json:"applicationUniqueId"`
	Status    Status               `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Job       JobDetail            `json:"jobId"`
	Applicant ApplicantDetail      `json:"userId"`
}

// GraphPoint - one per-day bucket of the reporting graph
type GraphPoint struct {
	Date         string `db:"date" json:"date"`
	Applications int64  `db:"applications" json:"applications"`
	Placements   int64  `db:"placements" json:"placements"`
}

// Response type aliases for paginated listings
type PaginatedUserApplicationsResponse = kernel.Paginated[UserApplicationRow]
type PaginatedAdminApplicationsResponse = kernel.Paginated[AdminApplicationRow]
