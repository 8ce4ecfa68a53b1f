package application

import (
	"time"

	"github.com/careerlane/careerlane/pkg/kernel"
	"slices"
)

// Status represents the lifecycle state of an application
type Status string

const (
	StatusApplied         Status = "APPLIED"           // Submitted by the user
	StatusCancelledByUser Status = "CANCELLED_BY_USER" // Withdrawn by the user
	StatusShortlisted     Status = "SHORTLISTED"       // Admin: passed initial review
	StatusInterviewing    Status = "INTERVIEWING"      // Admin: in interview process
	StatusRejected        Status = "REJECTED"          // Admin: rejected
	StatusPlaced          Status = "PLACED"            // Admin: successfully placed
)

var allStatuses = []Status{
	StatusApplied,
	StatusCancelledByUser,
	StatusShortlisted,
	StatusInterviewing,
	StatusRejected,
	StatusPlaced,
}

// userStatuses are the only statuses a user may set on their own record.
var userStatuses = []Status{
	StatusApplied,
	StatusCancelledByUser,
}

// IsValid reports whether s belongs to the closed status vocabulary.
func (s Status) IsValid() bool {
	return slices.Contains(allStatuses, s)
}

// IsUserAssignable reports whether a user may set s through the user-facing
// update operation. Admin vocabulary is reserved for the admin override.
func (s Status) IsUserAssignable() bool {
	return slices.Contains(userStatuses, s)
}

type Application struct {
	ID        kernel.ApplicationID `db:"id" json:"id"`
	UniqueID  kernel.UniqueID      `db:"application_unique_id" json:"applicationUniqueId"`
	UserID    kernel.UserID        `db:"user_id" json:"userId"`
	JobID     kernel.JobID         `db:"job_id" json:"jobId"`
	Status    Status               `db:"status" json:"status"`
	CreatedAt time.Time            `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsCancelled checks if the user withdrew this application.
func (a *Application) IsCancelled() bool {
	return a.Status == StatusCancelledByUser
}

// IsPlaced checks if the application ended in a successful placement.
func (a *Application) IsPlaced() bool {
	return a.Status == StatusPlaced
}

// Reapply moves a cancelled application back to APPLIED on the same record.
// Identity and UniqueID survive across cancel/re-apply cycles.
func (a *Application) Reapply() {
	a.Status = StatusApplied
	a.UpdatedAt = time.Now()
}

// SetStatus assigns a new status. Validation of who may assign which status
// lives in the services; the entity only enforces the closed vocabulary.
func (a *Application) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus().WithDetail("status", status)
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}
