package job

import (
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
)

type Job struct {
	ID          kernel.JobID          `db:"id" json:"id"`
	UniqueID    kernel.UniqueID       `db:"job_unique_id" json:"jobUniqueId"`
	CompanyName kernel.CompanyName    `db:"company_name" json:"companyName"`
	Industry    kernel.Industry       `db:"industry" json:"industry"`
	Designation kernel.Designation    `db:"designation" json:"designation"`
	Vacancy     int                   `db:"vacancy" json:"vacancy"`
	Salary      int64                 `db:"salary" json:"salary"`
	Benefits    string                `db:"benefits" json:"benefits"`
	Skills      string                `db:"skills" json:"skills"`
	Description kernel.JobDescription `db:"job_description" json:"jobDescription"`
	Nationality kernel.Nationality    `db:"nationality" json:"nationality"`
	CreatedAt   time.Time             `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time             `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// ApplyUpdate overwrites the fields present in the request, skipping nils.
func (j *Job) ApplyUpdate(req UpdateJobRequest) {
	if req.CompanyName != nil {
		j.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		j.Industry = *req.Industry
	}
	if req.Designation != nil {
		j.Designation = *req.Designation
	}
	if req.Vacancy != nil {
		j.Vacancy = *req.Vacancy
	}
	if req.Salary != nil {
		j.Salary = *req.Salary
	}
	if req.Benefits != nil {
		j.Benefits = *req.Benefits
	}
	if req.Skills != nil {
		j.Skills = *req.Skills
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Nationality != nil {
		j.Nationality = *req.Nationality
	}
	j.UpdatedAt = time.Now()
}
