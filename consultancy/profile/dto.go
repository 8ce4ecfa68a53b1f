package profile

import (
	"time"

	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
)

// CreateProfileRequest - DTO for creating a profile through the admin surface
type CreateProfileRequest struct {
	FullName kernel.FullName `json:"fullName" validate:"required"`
	Email    kernel.Email    `json:"email" validate:"required,email"`
	Role     auth.Role       `json:"role"`
	Phone    kernel.Phone    `json:"phone"`
	PhoneTwo kernel.Phone    `json:"phoneTwo"`
}

// UpdateProfileRequest - DTO for the user-facing profile update
type UpdateProfileRequest struct {
	FullName           *kernel.FullName    `json:"fullName,omitempty"`
	Phone              *kernel.Phone       `json:"phone,omitempty"`
	PhoneTwo           *kernel.Phone       `json:"phoneTwo,omitempty"`
	Gender             *kernel.Gender      `json:"gender,omitempty"`
	Nationality        *kernel.Nationality `json:"nationality,omitempty"`
	DOB                *time.Time          `json:"dob,omitempty"`
	ProfessionalStatus *string             `json:"professionalStatus,omitempty"`
	LinkedInUsername   *string             `json:"linkedInUsername,omitempty"`
	PortfolioURL       *string             `json:"portfolioUrl,omitempty"`
}

// SetBlockedRequest - DTO for the admin block/unblock toggle
type SetBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

// ProfileResponse - DTO for returning profile data with resolved asset URLs.
// ProfileImageURL and ResumeURL are signed, time-limited links; the raw
// storage keys are never exposed.
type ProfileResponse struct {
	ID                 kernel.UserID      `json:"id"`
	SerialNumber       kernel.UniqueID    `json:"serialNumber"`
	FullName           kernel.FullName    `json:"fullName"`
	Email              kernel.Email       `json:"email"`
	Role               auth.Role          `json:"role"`
	Phone              kernel.Phone       `json:"phone"`
	PhoneTwo           kernel.Phone       `json:"phoneTwo"`
	Gender             kernel.Gender      `json:"gender"`
	Nationality        kernel.Nationality `json:"nationality"`
	DOB                *time.Time         `json:"dob,omitempty"`
	ProfessionalStatus string             `json:"professionalStatus"`
	LinkedInUsername   string             `json:"linkedInUsername"`
	PortfolioURL       string             `json:"portfolioUrl"`
	ProfileImageURL    string             `json:"profileImage,omitempty"`
	ResumeURL          string             `json:"resume,omitempty"`
	IsBlocked          bool               `json:"isBlocked"`
	IsVerified         bool               `json:"isVerified"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// PaginatedProfilesResponse - paginated admin listing
type PaginatedProfilesResponse = kernel.Paginated[ProfileResponse]
