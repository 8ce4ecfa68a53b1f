package profilesrv

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/consultancy/signedurl/signedurlsrv"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/careerlane/careerlane/pkg/logx"
	"github.com/careerlane/careerlane/pkg/sequence"
	"github.com/google/uuid"
)

// UserSerialPrefix is the human-readable prefix of minted user serials.
const UserSerialPrefix = "USR"

// ProfileService provides business operations for user profiles
type ProfileService struct {
	profileRepo profile.Repository
	sequences   sequence.Provider
	urls        *signedurlsrv.Resolver
}

// NewProfileService creates a new instance of the profile service
func NewProfileService(
	profileRepo profile.Repository,
	sequences sequence.Provider,
	urls *signedurlsrv.Resolver,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		sequences:   sequences,
		urls:        urls,
	}
}

// CreateProfile registers a new user account, minting its serial number from
// the shared counter. New accounts start unverified and unblocked.
func (s *ProfileService) CreateProfile(ctx context.Context, req profile.CreateProfileRequest) (*profile.ProfileResponse, error) {
	if req.FullName == "" || req.Email == "" {
		return nil, profile.ErrInvalidRequest().WithDetail("reason", "fullName and email are required")
	}

	role := req.Role
	if role == "" {
		role = auth.RoleUser
	}

	seq, err := s.sequences.Next(ctx, sequence.CounterUsers)
	if err != nil {
		return nil, errx.Wrap(err, "failed to mint user serial", errx.TypeInternal)
	}

	now := time.Now()
	newProfile := &profile.Profile{
		ID:           kernel.NewUserID(uuid.NewString()),
		SerialNumber: kernel.FormatUniqueID(UserSerialPrefix, seq),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         role,
		Phone:        req.Phone,
		PhoneTwo:     req.PhoneTwo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.profileRepo.Create(ctx, newProfile); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, newProfile), nil
}

// UpdateProfile applies a partial update to a user's own profile
func (s *ProfileService) UpdateProfile(ctx context.Context, id kernel.UserID, req profile.UpdateProfileRequest) (*profile.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.PhoneTwo != nil {
		existing.PhoneTwo = *req.PhoneTwo
	}
	if req.Gender != nil {
		existing.Gender = *req.Gender
	}
	if req.Nationality != nil {
		existing.Nationality = *req.Nationality
	}
	if req.DOB != nil {
		existing.DOB = req.DOB
	}
	if req.ProfessionalStatus != nil {
		existing.ProfessionalStatus = *req.ProfessionalStatus
	}
	if req.LinkedInUsername != nil {
		existing.LinkedInUsername = *req.LinkedInUsername
	}
	if req.PortfolioURL != nil {
		existing.PortfolioURL = *req.PortfolioURL
	}
	existing.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, existing), nil
}

// GetProfile retrieves a profile with its file fields resolved to signed URLs
func (s *ProfileService) GetProfile(ctx context.Context, id kernel.UserID) (*profile.ProfileResponse, error) {
	found, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, found), nil
}

// SetBlocked toggles the blocked flag on an account
func (s *ProfileService) SetBlocked(ctx context.Context, id kernel.UserID, blocked bool) (*profile.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if blocked {
		existing.Block()
	} else {
		existing.Unblock()
	}

	if err := s.profileRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, existing), nil
}

// VerifyProfile marks an account as verified
func (s *ProfileService) VerifyProfile(ctx context.Context, id kernel.UserID) (*profile.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Verify()

	if err := s.profileRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, existing), nil
}

// SetFileKeys records new storage keys for a user's uploaded assets,
// skipping empty values.
func (s *ProfileService) SetFileKeys(ctx context.Context, id kernel.UserID, profileImageKey, resumeKey kernel.StorageKey) (*profile.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !profileImageKey.IsEmpty() {
		existing.ProfileImageKey = profileImageKey
	}
	if !resumeKey.IsEmpty() {
		existing.ResumeKey = resumeKey
	}
	existing.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, existing), nil
}

// DeleteProfile removes a user account
func (s *ProfileService) DeleteProfile(ctx context.Context, id kernel.UserID) error {
	return s.profileRepo.Delete(ctx, id)
}

// ListProfiles retrieves all profiles with pagination for the admin console
func (s *ProfileService) ListProfiles(ctx context.Context, pagination kernel.PaginationOptions) (*profile.PaginatedProfilesResponse, error) {
	profiles, err := s.profileRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list profiles", errx.TypeInternal)
	}

	responses := make([]profile.ProfileResponse, 0, len(profiles.Items))
	for i := range profiles.Items {
		responses = append(responses, *s.toResponse(ctx, &profiles.Items[i]))
	}

	return &kernel.Paginated[profile.ProfileResponse]{
		Items: responses,
		Page:  profiles.Page,
		Empty: profiles.Empty,
	}, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// toResponse converts a Profile entity to its response DTO, resolving file
// keys to signed URLs. A resolution failure degrades the field to empty.
func (s *ProfileService) toResponse(ctx context.Context, p *profile.Profile) *profile.ProfileResponse {
	return &profile.ProfileResponse{
		ID:                 p.ID,
		SerialNumber:       p.SerialNumber,
		FullName:           p.FullName,
		Email:              p.Email,
		Role:               p.Role,
		Phone:              p.Phone,
		PhoneTwo:           p.PhoneTwo,
		Gender:             p.Gender,
		Nationality:        p.Nationality,
		DOB:                p.DOB,
		ProfessionalStatus: p.ProfessionalStatus,
		LinkedInUsername:   p.LinkedInUsername,
		PortfolioURL:       p.PortfolioURL,
		ProfileImageURL:    s.resolveFileURL(ctx, p.ProfileImageKey),
		ResumeURL:          s.resolveFileURL(ctx, p.ResumeKey),
		IsBlocked:          p.IsBlocked,
		IsVerified:         p.IsVerified,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (s *ProfileService) resolveFileURL(ctx context.Context, key kernel.StorageKey) string {
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
