package applicationinfra

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresApplicationRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func applicationColumns() []string {
	return []string{"id", "application_unique_id", "user_id", "job_id", "status", "created_at", "updated_at"}
}

func TestCreateTranslatesUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &application.Application{
		ID:     "app-1",
		UserID: "user-1",
		JobID:  "job-1",
		Status: application.StatusApplied,
	})

	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserAndJobReturnsNilOnMiss(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM applications").
		WithArgs("user-1", "job-1").
		WillReturnRows(sqlmock.NewRows(applicationColumns()))

	app, err := repo.FindByUserAndJob(context.Background(), "user-1", "job-1")
	require.NoError(t, err)
	assert.Nil(t, app)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserAndJobReturnsEntity(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM applications").
		WithArgs("user-1", "job-1").
		WillReturnRows(sqlmock.NewRows(applicationColumns()).
			AddRow("app-1", "APP-000009", "user-1", "job-1", "CANCELLED_BY_USER", now, now))

	app, err := repo.FindByUserAndJob(context.Background(), "user-1", "job-1")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, kernel.UniqueID("APP-000009"), app.UniqueID)
	assert.True(t, app.IsCancelled())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM applications").
		WithArgs("app-missing").
		WillReturnRows(sqlmock.NewRows(applicationColumns()))

	_, err := repo.GetByID(context.Background(), "app-missing")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE applications").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "app-missing", &application.Application{
		Status: application.StatusShortlisted,
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUserPaginates(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	mock.ExpectQuery("SELECT (.+) FROM applications a").
		WithArgs("user-1", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at", "status", "job_id", "designation", "job_unique_id"}).
			AddRow("app-11", now, "APPLIED", "job-3", "Accountant", "JOB-000003"))

	page, err := repo.ListForUser(context.Background(), "user-1", kernel.PaginationOptions{Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, kernel.Designation("Accountant"), page.Items[0].Designation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatusSince(t *testing.T) {
	repo, mock := newMockRepo(t)
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("PLACED", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatusSince(context.Background(), application.StatusPlaced, since)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatusSinceZeroTimeCountsAllTime(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("PLACED", time.Time{}).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountByStatusSince(context.Background(), application.StatusPlaced, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
