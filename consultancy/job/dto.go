package job

import (
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

// CreateJobRequest - DTO for posting a new job
type CreateJobRequest struct {
	CompanyName kernel.CompanyName    `json:"companyName" validate:"required"`
	Industry    kernel.Industry       `json:"industry" validate:"required"`
	Designation kernel.Designation    `json:"designation" validate:"required"`
	Vacancy     int                   `json:"vacancy"`
	Salary      int64                 `json:"salary"`
	Benefits    string                `json:"benefits"`
	Skills      string                `json:"skills"`
	Description kernel.JobDescription `json:"jobDescription" validate:"required"`
	Nationality kernel.Nationality    `json:"nationality"`
}

// UpdateJobRequest - DTO for editing a job; nil fields are left untouched
type UpdateJobRequest struct {
	CompanyName *kernel.CompanyName    `json:"companyName,omitempty"`
	Industry    *kernel.Industry       `json:"industry,omitempty"`
	Designation *kernel.Designation    `json:"designation,omitempty"`
	Vacancy     *int                   `json:"vacancy,omitempty"`
	Salary      *int64                 `json:"salary,omitempty"`
	Benefits    *string                `json:"benefits,omitempty"`
	Skills      *string                `json:"skills,omitempty"`
	Description *kernel.JobDescription `json:"jobDescription,omitempty"`
	Nationality *kernel.Nationality    `json:"nationality,omitempty"`
}

// UserJobRow - one row of the user-facing job listing. Applied reflects
// whether the viewing user currently holds a live application for the job.
type UserJobRow struct {
	ID          kernel.JobID          `json:"_id"`
	UniqueID    kernel.UniqueID       `json:"jobUniqueId"`
	CompanyName kernel.CompanyName    `json:"companyName"`
	Industry    kernel.Industry       `json:"industry"`
	Designation kernel.Designation    `json:"designation"`
	Vacancy     int                   `json:"vacancy"`
	Salary      int64                 `json:"salary"`
	Benefits    string                `json:"benefits"`
	Skills      string                `json:"skills"`
	Description kernel.JobDescription `json:"jobDescription"`
	Nationality kernel.Nationality    `json:"nationality"`
	CreatedAt   time.Time             `json:"createdAt"`
	Applied     bool                  `json:"applied"`
}

// Response type aliases for paginated listings
type PaginatedJobsResponse = kernel.Paginated[Job]
type PaginatedUserJobsResponse = kernel.Paginated[UserJobRow]
