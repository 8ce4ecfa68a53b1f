package jobsrv

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/careerlane/careerlane/pkg/sequence"
	"github.com/google/uuid"
)

// JobUniqueIDPrefix is the human-readable prefix of minted job identifiers.
const JobUniqueIDPrefix = "JOB"

// JobService provides business operations for job postings
type JobService struct {
	jobRepo   job.Repository
	sequences sequence.Provider
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, sequences sequence.Provider) *JobService {
	return &JobService{
		jobRepo:   jobRepo,
		sequences: sequences,
	}
}

// CreateJob posts a new job, minting its human-readable unique identifier
// from the shared counter.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if req.CompanyName == "" || req.Designation == "" || req.Description == "" {
		return nil, job.ErrInvalidRequest().WithDetail("reason", "companyName, designation and jobDescription are required")
	}

	seq, err := s.sequences.Next(ctx, sequence.CounterJobs)
	if err != nil {
		return nil, errx.Wrap(err, "failed to mint job id", errx.TypeInternal)
	}

	now := time.Now()
	newJob := &job.Job{
		ID:          kernel.NewJobID(uuid.NewString()),
		UniqueID:    kernel.FormatUniqueID(JobUniqueIDPrefix, seq),
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Designation: req.Designation,
		Vacancy:     req.Vacancy,
		Salary:      req.Salary,
		Benefits:    req.Benefits,
		Skills:      req.Skills,
		Description: req.Description,
		Nationality: req.Nationality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, err
	}

	return newJob, nil
}

// UpdateJob edits an existing job
func (s *JobService) UpdateJob(ctx context.Context, id kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(req)

	if err := s.jobRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// DeleteJob removes a job posting
func (s *JobService) DeleteJob(ctx context.Context, id kernel.JobID) error {
	return s.jobRepo.Delete(ctx, id)
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// ListJobsForUser retrieves all jobs annotated with the viewing user's
// application state
func (s *JobService) ListJobsForUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*job.PaginatedUserJobsResponse, error) {
	jobs, err := s.jobRepo.ListForUser(ctx, userID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs for user", errx.TypeInternal)
	}
	return jobs, nil
}
