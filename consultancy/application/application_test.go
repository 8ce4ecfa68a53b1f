package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusVocabulary(t *testing.T) {
	for _, s := range []Status{
		StatusApplied,
		StatusCancelledByUser,
		StatusShortlisted,
		StatusInterviewing,
		StatusRejected,
		StatusPlaced,
	} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}

	assert.False(t, Status("HIRED").IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("applied").IsValid(), "status comparison is case sensitive")
}

func TestUserAssignableStatuses(t *testing.T) {
	assert.True(t, StatusApplied.IsUserAssignable())
	assert.True(t, StatusCancelledByUser.IsUserAssignable())

	assert.False(t, StatusShortlisted.IsUserAssignable())
	assert.False(t, StatusInterviewing.IsUserAssignable())
	assert.False(t, StatusRejected.IsUserAssignable())
	assert.False(t, StatusPlaced.IsUserAssignable())
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	app := &Application{Status: StatusApplied}

	err := app.SetStatus(Status("ARCHIVED"))
	require.Error(t, err)
	assert.Equal(t, StatusApplied, app.Status, "a rejected transition must not mutate the entity")
}

func TestReapplyKeepsIdentity(t *testing.T) {
	app := &Application{
		ID:       "app-1",
		UniqueID: "APP-000007",
		Status:   StatusCancelledByUser,
	}

	app.Reapply()

	assert.Equal(t, StatusApplied, app.Status)
	assert.Equal(t, "APP-000007", app.UniqueID.String())
	assert.Equal(t, "app-1", app.ID.String())
}
