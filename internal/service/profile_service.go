package service

import (
	"context"
	"fmt"
	"io"

	"estatehub/internal/models"
	"estatehub/internal/repository"
	"estatehub/internal/storage"
)

type UpdateProfileRequest struct {
	FullName  string `json:"fullName" validate:"required"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Role      string `json:"role" validate:"required,oneof=owner renter broker"`
	AvatarURL string `json:"avatarUrl"`
}

type ProfileService interface {
	Get(ctx context.Context, principal *models.Principal) (*models.Profile, error)
	Update(ctx context.Context, principal *models.Principal, req UpdateProfileRequest) (*models.Profile, error)
	UploadAvatar(ctx context.Context, principal *models.Principal, fileName string, file io.Reader, size int64) (string, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	storage     storage.Storage
}

func NewProfileService(profileRepo repository.ProfileRepository, storage storage.Storage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		storage:     storage,
	}
}

func (s *profileService) Get(ctx context.Context, principal *models.Principal) (*models.Profile, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}

	return s.profileRepo.GetProfileByID(ctx, principal.ID)
}

// Update edits the principal's own profile. The admin role is not
// self-assignable; admins keep their role through this path, everyone else
// picks from the public roles.
func (s *profileService) Update(ctx context.Context, principal *models.Principal, req UpdateProfileRequest) (*models.Profile, error) {
	if principal == nil {
		return nil, ErrUnauthorized
	}

	profile, err := s.profileRepo.GetProfileByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if profile.Role == models.RoleAdmin {
		role = models.RoleAdmin
	} else if role == models.RoleAdmin {
		return nil, fmt.Errorf("invalid role")
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Whatsapp = req.Whatsapp
	profile.Role = role
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UploadAvatar overwrites the profile-keyed object, so the previous avatar
// is replaced rather than orphaned.
func (s *profileService) UploadAvatar(ctx context.Context, principal *models.Principal, fileName string, file io.Reader, size int64) (string, error) {
	if principal == nil {
		return "", ErrUnauthorized
	}

	return s.storage.UploadAvatar(ctx, principal.ID, fileName, file, size)
}
