package applicationsrv

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/consultancy/signedurl/signedurlsrv"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/careerlane/careerlane/pkg/logx"
	"github.com/careerlane/careerlane/pkg/sequence"
	"github.com/google/uuid"
)

// ApplicationUniqueIDPrefix is the human-readable prefix of minted
// application identifiers.
const ApplicationUniqueIDPrefix = "APP"

// ApplicationService provides the application lifecycle operations
type ApplicationService struct {
	applicationRepo application.Repository
	profileRepo     profile.Repository
	jobRepo         job.Repository
	sequences       sequence.Provider
	urls            *signedurlsrv.Resolver
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	profileRepo profile.Repository,
	jobRepo job.Repository,
	sequences sequence.Provider,
	urls *signedurlsrv.Resolver,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		jobRepo:         jobRepo,
		sequences:       sequences,
		urls:            urls,
	}
}

// Apply submits an application for a job on behalf of a user.
//
// The operation is idempotent: a live application for the same job is
// returned as-is, and a cancelled one is revived in place, keeping its
// identity and unique id. Account and profile-completeness gates run before
// any write.
func (s *ApplicationService) Apply(ctx context.Context, req application.ApplyRequest) (*application.ApplyResponse, error) {
	if req.UserID.IsEmpty() || req.JobID.IsEmpty() {
		return nil, application.ErrInvalidRequest().WithDetail("reason", "userId and jobId are required")
	}

	applicant, err := s.profileRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.checkApplicantEligibility(applicant); err != nil {
		return nil, err
	}

	if err := s.validateJobExists(ctx, req.JobID); err != nil {
		return nil, err
	}

	existing, err := s.applicationRepo.FindByUserAndJob(ctx, req.UserID, req.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to look up existing application", errx.TypeInternal)
	}

	if existing != nil {
		if !existing.IsCancelled() {
			// Repeat submission for a live application acknowledges the
			// current state without writing anything.
			return &application.ApplyResponse{JobID: existing.JobID, Status: existing.Status}, nil
		}

		existing.Reapply()
		if err := s.applicationRepo.Update(ctx, existing.ID, existing); err != nil {
			return nil, errx.Wrap(err, "failed to revive application", errx.TypeInternal)
		}
		return &application.ApplyResponse{JobID: existing.JobID, Status: existing.Status}, nil
	}

	seq, err := s.sequences.Next(ctx, sequence.CounterApplications)
	if err != nil {
		return nil, errx.Wrap(err, "failed to mint application id", errx.TypeInternal)
	}

	now := time.Now()
	newApplication := &application.Application{
		ID:        kernel.NewApplicationID(uuid.NewString()),
		UniqueID:  kernel.FormatUniqueID(ApplicationUniqueIDPrefix, seq),
		UserID:    req.UserID,
		JobID:     req.JobID,
		Status:    application.StatusApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		if errx.IsType(err, errx.TypeConflict) {
			// Lost the race against a concurrent apply for the same pair.
			// The unique constraint guarantees exactly one row exists, so
			// report the winner's state.
			logx.Debugf("concurrent apply for user %s job %s, reloading winner", req.UserID, req.JobID)
			winner, ferr := s.applicationRepo.FindByUserAndJob(ctx, req.UserID, req.JobID)
			if ferr != nil || winner == nil {
				return nil, application.ErrAlreadyExists()
			}
			return &application.ApplyResponse{JobID: winner.JobID, Status: winner.Status}, nil
		}
		return nil, err
	}

	return &application.ApplyResponse{JobID: newApplication.JobID, Status: newApplication.Status}, nil
}

// UpdateOwnStatus changes the status of the caller's own application. Users
// may only move between APPLIED and CANCELLED_BY_USER; everything else
// belongs to the admin override. The account and profile gates run here the
// same as on apply, so a blocked or unverified account cannot touch its
// applications either.
func (s *ApplicationService) UpdateOwnStatus(ctx context.Context, req application.UpdateStatusRequest) (*application.Application, error) {
	if req.ApplicationID.IsEmpty() || req.UserID.IsEmpty() {
		return nil, application.ErrInvalidRequest().WithDetail("reason", "_id and userId are required")
	}

	applicant, err := s.profileRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.checkApplicantEligibility(applicant); err != nil {
		return nil, err
	}

	if !req.Status.IsUserAssignable() {
		return nil, application.ErrInvalidStatus().WithDetail("status", req.Status)
	}

	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}

	if app.UserID != req.UserID {
		// Ownership failures read as not-found so the record's existence is
		// not disclosed to other users.
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", req.ApplicationID.String())
	}

	if err := app.SetStatus(req.Status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, app.ID, app); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		return nil, application.ErrUpdateFailed().WithCause(err)
	}

	return app, nil
}

// Cancel withdraws the caller's own application
func (s *ApplicationService) Cancel(ctx context.Context, applicationID kernel.ApplicationID, userID kernel.UserID) (*application.Application, error) {
	return s.UpdateOwnStatus(ctx, application.UpdateStatusRequest{
		ApplicationID: applicationID,
		UserID:        userID,
		Status:        application.StatusCancelledByUser,
	})
}

// OverrideStatus moves an application to any status in the vocabulary. This
// is the admin surface; route-level middleware enforces the role.
func (s *ApplicationService) OverrideStatus(ctx context.Context, req application.OverrideStatusRequest) (*application.Application, error) {
	if req.ApplicationID.IsEmpty() {
		return nil, application.ErrInvalidRequest().WithDetail("reason", "_id is required")
	}

	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}

	if err := app.SetStatus(req.Status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, app.ID, app); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		return nil, application.ErrUpdateFailed().WithCause(err)
	}

	return app, nil
}

// ListForUser retrieves the caller's applications joined with job fields
func (s *ApplicationService) ListForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*application.PaginatedUserApplicationsResponse, error) {
	rows, err := s.applicationRepo.ListForUser(ctx, userID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list user applications", errx.TypeInternal)
	}
	return rows, nil
}

// ListForAdmin retrieves all applications joined with job and applicant
// fields
func (s *ApplicationService) ListForAdmin(ctx context.Context, pagination kernel.PaginationOptions) (*application.PaginatedAdminApplicationsResponse, error) {
	rows, err := s.applicationRepo.ListForAdmin(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}
	return rows, nil
}

// FetchDetail retrieves one application with full job and applicant detail.
// File fields are resolved to signed, time-limited URLs; a resolution
// failure degrades that field to empty rather than failing the whole read.
func (s *ApplicationService) FetchDetail(ctx context.Context, id kernel.ApplicationID) (*application.DetailResponse, error) {
	row, err := s.applicationRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &application.DetailResponse{
		ID:        kernel.ApplicationID(row.ID),
		UniqueID:  kernel.UniqueID(row.UniqueID),
		Status:    application.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Job: application.JobDetail{
			Designation: kernel.Designation(row.JobDesignation),
			CompanyName: kernel.CompanyName(row.CompanyName),
			Industry:    kernel.Industry(row.Industry),
			Vacancy:     row.Vacancy,
			Salary:      row.Salary,
			Benefits:    row.Benefits,
			Skills:      row.Skills,
			Description: kernel.JobDescription(row.JobDescription),
			Nationality: kernel.Nationality(row.JobNationality),
			JobUniqueID: kernel.UniqueID(row.JobUniqueID),
			CreatedAt:   row.JobCreatedAt,
		},
		Applicant: application.ApplicantDetail{
			FullName:           kernel.FullName(row.FullName),
			Email:              kernel.Email(row.Email),
			SerialNumber:       kernel.UniqueID(row.SerialNumber),
			Phone:              kernel.Phone(row.Phone),
			PhoneTwo:           kernel.Phone(row.PhoneTwo),
			Gender:             kernel.Gender(row.Gender),
			Nationality:        kernel.Nationality(row.UserNationality),
			DOB:                row.DOB,
			ProfessionalStatus: row.ProfessionalStatus,
			LinkedInUsername:   row.LinkedInUsername,
			PortfolioURL:       row.PortfolioURL,
		},
	}

	detail.Applicant.ProfileImageURL = s.resolveFileURL(ctx, kernel.StorageKey(row.ProfileImageKey))
	detail.Applicant.ResumeURL = s.resolveFileURL(ctx, kernel.StorageKey(row.ResumeKey))

	return detail, nil
}

// ============================================================================
// Validation Helper Methods
// ============================================================================

// checkApplicantEligibility enforces the account and profile gates, in
// order: blocked, unverified, incomplete profile.
func (s *ApplicationService) checkApplicantEligibility(applicant *profile.Profile) error {
	if applicant.IsBlocked {
		return profile.ErrAccountBlocked()
	}

	if !applicant.IsVerified {
		return profile.ErrAccountUnverified()
	}

	if missing := applicant.MissingRequiredFields(profile.RequiredFields); len(missing) > 0 {
		return profile.ErrIncompleteProfile(missing)
	}

	return nil
}

// validateJobExists checks if a job exists
func (s *ApplicationService) validateJobExists(ctx context.Context, jobID kernel.JobID) error {
	exists, err := s.jobRepo.Exists(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to validate job existence", errx.TypeInternal)
	}

	if !exists {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// resolveFileURL converts a storage key into a signed URL, degrading to
// empty on missing keys or resolver failures.
func (s *ApplicationService) resolveFileURL(ctx context.Context, key kernel.StorageKey) string {
	if key.IsEmpty() {
		return ""
	}

	url, err := s.urls.Resolve(ctx, key)
	if err != nil {
		logx.Warnf("failed to resolve signed url for %s: %v", key, err)
		return ""
	}
	return url
}
