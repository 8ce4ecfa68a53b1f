package profile

import (
	"time"

	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
)

type Profile struct {
	ID                 kernel.UserID      `db:"id" json:"id"`
	SerialNumber       kernel.UniqueID    `db:"serial_number" json:"serialNumber"`
	FullName           kernel.FullName    `db:"full_name" json:"fullName"`
	Email              kernel.Email       `db:"email" json:"email"`
	Role               auth.Role          `db:"role" json:"role"`
	Phone              kernel.Phone       `db:"phone" json:"phone"`
	PhoneTwo           kernel.Phone       `db:"phone_two" json:"phoneTwo"`
	Gender             kernel.Gender      `db:"gender" json:"gender"`
	Nationality        kernel.Nationality `db:"nationality" json:"nationality"`
	DOB                *time.Time         `db:"dob" json:"dob,omitempty"`
	ProfessionalStatus string             `db:"professional_status" json:"professionalStatus"`
	LinkedInUsername   string             `db:"linkedin_username" json:"linkedInUsername"`
	PortfolioURL       string             `db:"portfolio_url" json:"portfolioUrl"`
	ProfileImageKey    kernel.StorageKey  `db:"profile_image_key" json:"profileImage"`
	ResumeKey          kernel.StorageKey  `db:"resume_key" json:"resume"`
	IsBlocked          bool               `db:"is_blocked" json:"isBlocked"`
	IsVerified         bool               `db:"is_verified" json:"isVerified"`
	CreatedAt          time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Gating policy
// ============================================================================

// RequiredField names one profile attribute that must be present before the
// user may submit an application, paired with its presence check. The set is
// data rather than control flow so the policy can change without touching
// the lifecycle logic.
type RequiredField struct {
	Name    string
	Present func(*Profile) bool
}

// RequiredFields is the current gating policy. Resume and address are
// deliberately not part of it.
var RequiredFields = []RequiredField{
	{Name: "Phone", Present: func(p *Profile) bool { return p.Phone != "" }},
	{Name: "Gender", Present: func(p *Profile) bool { return p.Gender != "" }},
	{Name: "Nationality", Present: func(p *Profile) bool { return p.Nationality != "" }},
	{Name: "Date of Birth", Present: func(p *Profile) bool { return p.DOB != nil }},
	{Name: "Profession", Present: func(p *Profile) bool { return p.ProfessionalStatus != "" }},
}

// MissingRequiredFields returns the display names of every gating field the
// profile is missing, in policy order.
func (p *Profile) MissingRequiredFields(policy []RequiredField) []string {
	var missing []string
	for _, field := range policy {
		if !field.Present(p) {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsAdmin reports whether the profile belongs to an admin-level account.
func (p *Profile) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// Block marks the account as blocked.
func (p *Profile) Block() {
	p.IsBlocked = true
	p.UpdatedAt = time.Now()
}

// Unblock removes the blocked flag.
func (p *Profile) Unblock() {
	p.IsBlocked = false
	p.UpdatedAt = time.Now()
}

// Verify marks the account as verified.
func (p *Profile) Verify() {
	p.IsVerified = true
	p.UpdatedAt = time.Now()
}

// UpdateContactInfo updates phone numbers, skipping empty values.
func (p *Profile) UpdateContactInfo(phone, phoneTwo kernel.Phone) {
	if phone != "" {
		p.Phone = phone
	}
	if phoneTwo != "" {
		p.PhoneTwo = phoneTwo
	}
	p.UpdatedAt = time.Now()
}
