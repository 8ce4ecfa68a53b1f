package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *Profile {
	dob := time.Date(1992, 7, 3, 0, 0, 0, 0, time.UTC)
	return &Profile{
		Phone:              "+971500000002",
		Gender:             "male",
		Nationality:        "IN",
		DOB:                &dob,
		ProfessionalStatus: "Civil Engineer",
	}
}

func TestMissingRequiredFieldsComplete(t *testing.T) {
	assert.Empty(t, fullProfile().MissingRequiredFields(RequiredFields))
}

func TestMissingRequiredFieldsReportsInPolicyOrder(t *testing.T) {
	p := fullProfile()
	p.Gender = ""
	p.DOB = nil
	p.ProfessionalStatus = ""

	missing := p.MissingRequiredFields(RequiredFields)
	assert.Equal(t, []string{"Gender", "Date of Birth", "Profession"}, missing)
}

func TestMissingRequiredFieldsIgnoresResumeAndAddress(t *testing.T) {
	// Uploaded files are not part of the gating policy.
	p := fullProfile()
	p.ResumeKey = ""
	p.ProfileImageKey = ""

	assert.Empty(t, p.MissingRequiredFields(RequiredFields))
}

func TestBlockUnblock(t *testing.T) {
	p := fullProfile()

	p.Block()
	assert.True(t, p.IsBlocked)

	p.Unblock()
	assert.False(t, p.IsBlocked)
}

func TestVerify(t *testing.T) {
	p := fullProfile()
	assert.False(t, p.IsVerified)

	p.Verify()
	assert.True(t, p.IsVerified)
}

func TestUpdateContactInfoSkipsEmptyValues(t *testing.T) {
	p := fullProfile()
	original := p.Phone

	p.UpdateContactInfo("", "+971500000099")
	assert.Equal(t, original, p.Phone)
	assert.Equal(t, "+971500000099", p.PhoneTwo.String())
}
