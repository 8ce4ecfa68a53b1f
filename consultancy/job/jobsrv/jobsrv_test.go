package jobsrv

import (
	"context"
	"testing"

	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	created []*job.Job
	byID    map[kernel.JobID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[kernel.JobID]*job.Job{}}
}

func (f *fakeJobRepo) Create(ctx context.Context, j *job.Job) error {
	f.created = append(f.created, j)
	f.byID[j.ID] = j
	return nil
}
func (f *fakeJobRepo) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	if _, ok := f.byID[id]; !ok {
		return job.ErrJobNotFound()
	}
	f.byID[id] = j
	return nil
}
func (f *fakeJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := f.byID[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	cp := *j
	return &cp, nil
}
func (f *fakeJobRepo) Delete(ctx context.Context, id kernel.JobID) error {
	if _, ok := f.byID[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(f.byID, id)
	return nil
}
func (f *fakeJobRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated([]job.Job{}, p, len(f.byID)), nil
}
func (f *fakeJobRepo) ListForUser(ctx context.Context, userID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[job.UserJobRow], error) {
	return kernel.NewPaginated([]job.UserJobRow{}, p, len(f.byID)), nil
}
func (f *fakeJobRepo) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}
func (f *fakeJobRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeSequenceProvider struct {
	next int64
}

func (f *fakeSequenceProvider) Next(ctx context.Context, name string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestCreateJobMintsSequentialUniqueIDs(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, &fakeSequenceProvider{})

	first, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		CompanyName: "Acme Trading LLC",
		Designation: "Accountant",
		Description: "Ledger work",
	})
	require.NoError(t, err)

	second, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		CompanyName: "Acme Trading LLC",
		Designation: "Auditor",
		Description: "Audit work",
	})
	require.NoError(t, err)

	assert.Equal(t, kernel.UniqueID("JOB-000001"), first.UniqueID)
	assert.Equal(t, kernel.UniqueID("JOB-000002"), second.UniqueID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateJobRequiresCoreFields(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), &fakeSequenceProvider{})

	_, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		CompanyName: "Acme Trading LLC",
	})
	require.Error(t, err)
}

func TestUpdateJobAppliesPartialChanges(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, &fakeSequenceProvider{})

	created, err := svc.CreateJob(context.Background(), job.CreateJobRequest{
		CompanyName: "Acme Trading LLC",
		Designation: "Accountant",
		Description: "Ledger work",
		Vacancy:     2,
	})
	require.NoError(t, err)

	newVacancy := 5
	updated, err := svc.UpdateJob(context.Background(), created.ID, job.UpdateJobRequest{
		Vacancy: &newVacancy,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Vacancy)
	assert.Equal(t, created.Designation, updated.Designation)
	assert.Equal(t, created.UniqueID, updated.UniqueID)
}
