package applicationsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/consultancy/signedurl"
	"github.com/careerlane/careerlane/consultancy/signedurl/signedurlsrv"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeApplicationRepo struct {
	byID      map[kernel.ApplicationID]*application.Application
	byUserJob map[string]*application.Application

	createErr error
	updateErr error
	creates   int
	updates   int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID:      map[kernel.ApplicationID]*application.Application{},
		byUserJob: map[string]*application.Application{},
	}
}

func pairKey(userID kernel.UserID, jobID kernel.JobID) string {
	return userID.String() + "/" + jobID.String()
}

func (f *fakeApplicationRepo) put(app *application.Application) {
	cp := *app
	f.byID[app.ID] = &cp
	f.byUserJob[pairKey(app.UserID, app.JobID)] = &cp
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *application.Application) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUserJob[pairKey(app.UserID, app.JobID)]; ok {
		return application.ErrAlreadyExists()
	}
	f.put(app)
	return nil
}

func (f *fakeApplicationRepo) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[id]; !ok {
		return application.ErrApplicationNotFound()
	}
	f.put(app)
	return nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, ok := f.byID[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationRepo) FindByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*application.Application, error) {
	app, ok := f.byUserJob[pairKey(userID, jobID)]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationRepo) GetDetail(ctx context.Context, id kernel.ApplicationID) (*application.DetailRow, error) {
	return nil, application.ErrApplicationNotFound()
}

func (f *fakeApplicationRepo) ListForUser(ctx context.Context, userID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[application.UserApplicationRow], error) {
	return kernel.NewPaginated([]application.UserApplicationRow{}, p, 0), nil
}

func (f *fakeApplicationRepo) ListForAdmin(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[application.AdminApplicationRow], error) {
	return kernel.NewPaginated([]application.AdminApplicationRow{}, p, 0), nil
}

func (f *fakeApplicationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeApplicationRepo) CountByStatusSince(ctx context.Context, status application.Status, since time.Time) (int64, error) {
	var n int64
	for _, app := range f.byID {
		if app.Status == status && !app.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeApplicationRepo) GraphSince(ctx context.Context, since time.Time) ([]application.GraphPoint, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[kernel.UserID]*profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, id kernel.UserID, p *profile.Profile) error {
	return nil
}
func (f *fakeProfileRepo) GetByID(ctx context.Context, id kernel.UserID) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound()
	}
	return p, nil
}
func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email kernel.Email) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound()
}
func (f *fakeProfileRepo) Delete(ctx context.Context, id kernel.UserID) error { return nil }
func (f *fakeProfileRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[profile.Profile], error) {
	return kernel.NewPaginated([]profile.Profile{}, p, 0), nil
}
func (f *fakeProfileRepo) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	_, ok := f.profiles[id]
	return ok, nil
}
func (f *fakeProfileRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.profiles)), nil
}
func (f *fakeProfileRepo) SignupsPerDay(ctx context.Context, since time.Time) ([]profile.DateCount, error) {
	return nil, nil
}

type fakeJobRepo struct {
	existing map[kernel.JobID]bool
}

func (f *fakeJobRepo) Create(ctx context.Context, j *job.Job) error { return nil }
func (f *fakeJobRepo) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	return nil
}
func (f *fakeJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	if !f.existing[id] {
		return nil, job.ErrJobNotFound()
	}
	return &job.Job{ID: id}, nil
}
func (f *fakeJobRepo) Delete(ctx context.Context, id kernel.JobID) error { return nil }
func (f *fakeJobRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated([]job.Job{}, p, 0), nil
}
func (f *fakeJobRepo) ListForUser(ctx context.Context, userID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[job.UserJobRow], error) {
	return kernel.NewPaginated([]job.UserJobRow{}, p, 0), nil
}
func (f *fakeJobRepo) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	return f.existing[id], nil
}
func (f *fakeJobRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.existing)), nil
}

type fakeSequenceProvider struct {
	next int64
}

func (f *fakeSequenceProvider) Next(ctx context.Context, name string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeURLStore struct {
	entries map[kernel.StorageKey]*signedurl.Entry
}

func (f *fakeURLStore) Get(ctx context.Context, key kernel.StorageKey) (*signedurl.Entry, error) {
	return f.entries[key], nil
}
func (f *fakeURLStore) Put(ctx context.Context, entry *signedurl.Entry) error {
	f.entries[entry.Key] = entry
	return nil
}

type fakePresigner struct{}

func (fakePresigner) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://files.example.com/" + key, nil
}

// --- helpers ---

func completeProfile(id kernel.UserID) *profile.Profile {
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	return &profile.Profile{
		ID:                 id,
		FullName:           "Jordan Reyes",
		Email:              "jordan@example.com",
		Phone:              "+971500000001",
		Gender:             "female",
		Nationality:        "PH",
		DOB:                &dob,
		ProfessionalStatus: "Accountant",
		IsVerified:         true,
	}
}

func newTestService(appRepo *fakeApplicationRepo, profiles *fakeProfileRepo, jobs *fakeJobRepo) *ApplicationService {
	resolver := signedurlsrv.NewResolver(
		&fakeURLStore{entries: map[kernel.StorageKey]*signedurl.Entry{}},
		fakePresigner{},
		5*time.Minute,
	)
	return NewApplicationService(appRepo, profiles, jobs, &fakeSequenceProvider{}, resolver)
}

// --- tests ---

func TestApplyCreatesApplication(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	appRepo := newFakeApplicationRepo()
	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	jobs := &fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}}

	svc := newTestService(appRepo, profiles, jobs)

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.NoError(t, err)
	assert.Equal(t, jobID, resp.JobID)
	assert.Equal(t, application.StatusApplied, resp.Status)

	stored, err := appRepo.FindByUserAndJob(context.Background(), userID, jobID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, kernel.UniqueID("APP-000001"), stored.UniqueID)
}

func TestApplyIsIdempotentForLiveApplication(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	appRepo := newFakeApplicationRepo()
	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	jobs := &fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}}

	svc := newTestService(appRepo, profiles, jobs)

	_, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.NoError(t, err)

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.NoError(t, err)
	assert.Equal(t, application.StatusApplied, resp.Status)

	// Exactly one create, no revive write.
	assert.Equal(t, 1, appRepo.creates)
	assert.Equal(t, 0, appRepo.updates)
}

func TestApplyRevivesCancelledApplicationInPlace(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	appRepo := newFakeApplicationRepo()
	cancelled := &application.Application{
		ID:       kernel.ApplicationID("app-1"),
		UniqueID: kernel.UniqueID("APP-000042"),
		UserID:   userID,
		JobID:    jobID,
		Status:   application.StatusCancelledByUser,
	}
	appRepo.put(cancelled)

	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	jobs := &fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}}

	svc := newTestService(appRepo, profiles, jobs)

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.NoError(t, err)
	assert.Equal(t, application.StatusApplied, resp.Status)

	// Same record, same unique id: cancel/re-apply never mints a new one.
	revived, err := appRepo.GetByID(context.Background(), cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, kernel.UniqueID("APP-000042"), revived.UniqueID)
	assert.Equal(t, application.StatusApplied, revived.Status)
	assert.Equal(t, 0, appRepo.creates)
}

func TestApplyRejectsIncompleteProfile(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	incomplete := completeProfile(userID)
	incomplete.DOB = nil

	appRepo := newFakeApplicationRepo()
	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: incomplete}}
	jobs := &fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}}

	svc := newTestService(appRepo, profiles, jobs)

	_, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "PROFILE.INCOMPLETE_PROFILE", e.Code)
	assert.Contains(t, e.Message, "Date of Birth")
	assert.Equal(t, 0, appRepo.creates)
}

func TestApplyRejectsBlockedAndUnverifiedAccounts(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	t.Run("blocked", func(t *testing.T) {
		blocked := completeProfile(userID)
		blocked.IsBlocked = true

		svc := newTestService(
			newFakeApplicationRepo(),
			&fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: blocked}},
			&fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}},
		)

		_, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "PROFILE.ACCOUNT_BLOCKED", e.Code)
	})

	t.Run("unverified", func(t *testing.T) {
		unverified := completeProfile(userID)
		unverified.IsVerified = false

		svc := newTestService(
			newFakeApplicationRepo(),
			&fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: unverified}},
			&fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}},
		)

		_, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "PROFILE.ACCOUNT_UNVERIFIED", e.Code)
	})
}

func TestApplyRejectsUnknownJob(t *testing.T) {
	userID := kernel.UserID("user-1")

	svc := newTestService(
		newFakeApplicationRepo(),
		&fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}},
		&fakeJobRepo{existing: map[kernel.JobID]bool{}},
	)

	_, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: "job-missing"})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "JOB.NOT_FOUND", e.Code)
}

func TestApplyReportsWinnerAfterConcurrentConflict(t *testing.T) {
	userID := kernel.UserID("user-1")
	jobID := kernel.JobID("job-1")

	appRepo := newFakeApplicationRepo()
	appRepo.createErr = application.ErrAlreadyExists()
	winner := &application.Application{
		ID:     kernel.ApplicationID("app-winner"),
		UserID: userID,
		JobID:  jobID,
		Status: application.StatusApplied,
	}
	appRepo.put(winner)

	svc := newTestService(
		appRepo,
		&fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}},
		&fakeJobRepo{existing: map[kernel.JobID]bool{jobID: true}},
	)

	// FindByUserAndJob initially reports no row; wipe the pair index so the
	// service goes down the create path and hits the conflict.
	delete(appRepo.byUserJob, pairKey(userID, jobID))
	appRepo.byUserJob[pairKey(userID, jobID)] = winner

	resp, err := svc.Apply(context.Background(), application.ApplyRequest{UserID: userID, JobID: jobID})
	require.NoError(t, err)
	assert.Equal(t, application.StatusApplied, resp.Status)
}

func TestUpdateOwnStatusRejectsAdminVocabulary(t *testing.T) {
	userID := kernel.UserID("user-1")
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: userID,
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})

	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	svc := newTestService(appRepo, profiles, &fakeJobRepo{})

	_, err := svc.UpdateOwnStatus(context.Background(), application.UpdateStatusRequest{
		ApplicationID: "app-1",
		UserID:        userID,
		Status:        application.StatusPlaced,
	})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "APPLICATION.INVALID_STATUS", e.Code)
}

func TestUpdateOwnStatusHidesForeignApplications(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: kernel.UserID("owner"),
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})

	intruder := kernel.UserID("intruder")
	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{intruder: completeProfile(intruder)}}
	svc := newTestService(appRepo, profiles, &fakeJobRepo{})

	_, err := svc.UpdateOwnStatus(context.Background(), application.UpdateStatusRequest{
		ApplicationID: "app-1",
		UserID:        intruder,
		Status:        application.StatusCancelledByUser,
	})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "APPLICATION.NOT_FOUND", e.Code)
}

func TestCancelMovesApplicationToCancelled(t *testing.T) {
	userID := kernel.UserID("user-1")
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: userID,
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})

	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	svc := newTestService(appRepo, profiles, &fakeJobRepo{})

	updated, err := svc.Cancel(context.Background(), "app-1", userID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusCancelledByUser, updated.Status)
}

func TestUpdateOwnStatusRunsAccountGates(t *testing.T) {
	userID := kernel.UserID("user-1")

	newRepoWithApp := func() *fakeApplicationRepo {
		appRepo := newFakeApplicationRepo()
		appRepo.put(&application.Application{
			ID:     kernel.ApplicationID("app-1"),
			UserID: userID,
			JobID:  kernel.JobID("job-1"),
			Status: application.StatusApplied,
		})
		return appRepo
	}

	t.Run("blocked", func(t *testing.T) {
		blocked := completeProfile(userID)
		blocked.IsBlocked = true
		blocked.IsVerified = false

		appRepo := newRepoWithApp()
		profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: blocked}}
		svc := newTestService(appRepo, profiles, &fakeJobRepo{})

		_, err := svc.UpdateOwnStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: "app-1",
			UserID:        userID,
			Status:        application.StatusCancelledByUser,
		})
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "PROFILE.ACCOUNT_BLOCKED", e.Code)
		assert.Equal(t, 0, appRepo.updates)
	})

	t.Run("unverified", func(t *testing.T) {
		unverified := completeProfile(userID)
		unverified.IsVerified = false

		appRepo := newRepoWithApp()
		profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: unverified}}
		svc := newTestService(appRepo, profiles, &fakeJobRepo{})

		_, err := svc.Cancel(context.Background(), "app-1", userID)
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "PROFILE.ACCOUNT_UNVERIFIED", e.Code)
		assert.Equal(t, 0, appRepo.updates)
	})

	t.Run("incomplete profile", func(t *testing.T) {
		incomplete := completeProfile(userID)
		incomplete.Gender = ""

		appRepo := newRepoWithApp()
		profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: incomplete}}
		svc := newTestService(appRepo, profiles, &fakeJobRepo{})

		_, err := svc.UpdateOwnStatus(context.Background(), application.UpdateStatusRequest{
			ApplicationID: "app-1",
			UserID:        userID,
			Status:        application.StatusCancelledByUser,
		})
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "PROFILE.INCOMPLETE_PROFILE", e.Code)
		assert.Equal(t, 0, appRepo.updates)
	})
}

func TestUpdateOwnStatusReportsFailedWrite(t *testing.T) {
	userID := kernel.UserID("user-1")
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: userID,
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})
	appRepo.updateErr = errors.New("connection reset")

	profiles := &fakeProfileRepo{profiles: map[kernel.UserID]*profile.Profile{userID: completeProfile(userID)}}
	svc := newTestService(appRepo, profiles, &fakeJobRepo{})

	_, err := svc.UpdateOwnStatus(context.Background(), application.UpdateStatusRequest{
		ApplicationID: "app-1",
		UserID:        userID,
		Status:        application.StatusCancelledByUser,
	})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "APPLICATION.UPDATE_FAILED", e.Code)
}

func TestOverrideStatusAcceptsFullVocabulary(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: kernel.UserID("user-1"),
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})

	svc := newTestService(appRepo, &fakeProfileRepo{}, &fakeJobRepo{})

	updated, err := svc.OverrideStatus(context.Background(), application.OverrideStatusRequest{
		ApplicationID: "app-1",
		Status:        application.StatusPlaced,
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPlaced, updated.Status)
}

func TestOverrideStatusRejectsUnknownStatus(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	appRepo.put(&application.Application{
		ID:     kernel.ApplicationID("app-1"),
		UserID: kernel.UserID("user-1"),
		JobID:  kernel.JobID("job-1"),
		Status: application.StatusApplied,
	})

	svc := newTestService(appRepo, &fakeProfileRepo{}, &fakeJobRepo{})

	_, err := svc.OverrideStatus(context.Background(), application.OverrideStatusRequest{
		ApplicationID: "app-1",
		Status:        application.Status("HIRED_MAYBE"),
	})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "APPLICATION.INVALID_STATUS", e.Code)
}

func TestOverrideStatusUnknownApplication(t *testing.T) {
	svc := newTestService(newFakeApplicationRepo(), &fakeProfileRepo{}, &fakeJobRepo{})

	_, err := svc.OverrideStatus(context.Background(), application.OverrideStatusRequest{
		ApplicationID: "app-missing",
		Status:        application.StatusShortlisted,
	})
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "APPLICATION.NOT_FOUND", e.Code)
}
