package reportingsrv

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/pkg/errx"
)

// OverviewResponse - headline totals for the admin dashboard
type OverviewResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalPlacements   int64 `json:"totalPlacements"`
}

// GraphsResponse - per-day time series for the admin dashboard
type GraphsResponse struct {
	Signups      []profile.DateCount     `json:"signups"`
	Applications []application.GraphPoint `json:"applications"`
}

// ReportingService aggregates cross-domain counts for the admin dashboard
type ReportingService struct {
	profileRepo     profile.Repository
	jobRepo         job.Repository
	applicationRepo application.Repository
}

// NewReportingService creates a new instance of the reporting service
func NewReportingService(
	profileRepo profile.Repository,
	jobRepo job.Repository,
	applicationRepo application.Repository,
) *ReportingService {
	return &ReportingService{
		profileRepo:     profileRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Overview returns headline totals. Placements are counted from
// placementsSince onward; the zero time counts across all time.
func (s *ReportingService) Overview(ctx context.Context, placementsSince time.Time) (*OverviewResponse, error) {
	users, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count users", errx.TypeInternal)
	}

	jobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
	}

	applications, err := s.applicationRepo.Count(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	placements, err := s.applicationRepo.CountByStatusSince(ctx, application.StatusPlaced, placementsSince)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count placements", errx.TypeInternal)
	}

	return &OverviewResponse{
		TotalUsers:        users,
		TotalJobs:         jobs,
		TotalApplications: applications,
		TotalPlacements:   placements,
	}, nil
}

// Graphs returns per-day signup and application series covering the given
// number of trailing days.
func (s *ReportingService) Graphs(ctx context.Context, days int) (*GraphsResponse, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	signups, err := s.profileRepo.SignupsPerDay(ctx, since)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build signup graph", errx.TypeInternal)
	}

	applications, err := s.applicationRepo.GraphSince(ctx, since)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build application graph", errx.TypeInternal)
	}

	return &GraphsResponse{
		Signups:      signups,
		Applications: applications,
	}, nil
}
