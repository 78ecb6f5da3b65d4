package service

import (
	"context"
	"fmt"
	"slices"

	"estatehub/internal/models"
	"estatehub/internal/repository"
)

// UserPage is a windowed slice of profiles for the admin user table.
type UserPage struct {
	Users      []models.Profile `json:"users"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// PropertyPage is a windowed slice of listings for the moderation console.
type PropertyPage struct {
	Properties []models.AdminPropertyRow `json:"properties"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	TotalPages int                       `json:"totalPages"`
}

type AdminStats struct {
	TotalUsers          int `json:"totalUsers"`
	PendingProperties   int `json:"pendingProperties"`
	PublishedProperties int `json:"publishedProperties"`
}

// AdminService is the user-management and moderation-console backend. Every
// operation fails closed for non-admin principals; the admin role check is
// the only privilege mechanism in the system.
type AdminService interface {
	ListUsers(ctx context.Context, principal *models.Principal, page, limit int, search string) (*UserPage, error)
	UpdateUserRole(ctx context.Context, principal *models.Principal, userID, role string) error
	ToggleUserVerification(ctx context.Context, principal *models.Principal, userID string) (bool, error)
	ListPendingProperties(ctx context.Context, principal *models.Principal, page, limit int) (*PropertyPage, error)
	ListAllProperties(ctx context.Context, principal *models.Principal, page, limit int, status, search string) (*PropertyPage, error)
	Stats(ctx context.Context, principal *models.Principal) (*AdminStats, error)
}

type adminService struct {
	profileRepo  repository.ProfileRepository
	propertyRepo repository.PropertyRepository
}

func NewAdminService(profileRepo repository.ProfileRepository, propertyRepo repository.PropertyRepository) AdminService {
	return &adminService{
		profileRepo:  profileRepo,
		propertyRepo: propertyRepo,
	}
}

func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

func (s *adminService) ListUsers(ctx context.Context, principal *models.Principal, page, limit int, search string) (*UserPage, error) {
	if !principal.IsAdmin() {
		return nil, ErrUnauthorized
	}

	page, limit, offset := normalizePage(page, limit)

	users, total, err := s.profileRepo.ListProfiles(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, principal *models.Principal, userID, role string) error {
	if !principal.IsAdmin() {
		return ErrUnauthorized
	}

	allowed := []string{models.RoleOwner, models.RoleRenter, models.RoleBroker, models.RoleAdmin}
	if !slices.Contains(allowed, role) {
		return fmt.Errorf("invalid role %q", role)
	}

	return s.profileRepo.UpdateRole(ctx, userID, role)
}

func (s *adminService) ToggleUserVerification(ctx context.Context, principal *models.Principal, userID string) (bool, error) {
	if !principal.IsAdmin() {
		return false, ErrUnauthorized
	}

	return s.profileRepo.ToggleVerification(ctx, userID)
}

func (s *adminService) ListPendingProperties(ctx context.Context, principal *models.Principal, page, limit int) (*PropertyPage, error) {
	return s.ListAllProperties(ctx, principal, page, limit, models.StatusPending, "")
}

func (s *adminService) ListAllProperties(ctx context.Context, principal *models.Principal, page, limit int, status, search string) (*PropertyPage, error) {
	if !principal.IsAdmin() {
		return nil, ErrUnauthorized
	}

	page, limit, offset := normalizePage(page, limit)

	rows, total, err := s.propertyRepo.ListAdmin(ctx, status, search, limit, offset)
	if err != nil {
		return nil, err
	}

	return &PropertyPage{
		Properties: rows,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *adminService) Stats(ctx context.Context, principal *models.Principal) (*AdminStats, error) {
	if !principal.IsAdmin() {
		return nil, ErrUnauthorized
	}

	totalUsers, err := s.profileRepo.CountProfiles(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.propertyRepo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}

	published, err := s.propertyRepo.CountByStatus(ctx, models.StatusPublished)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:          totalUsers,
		PendingProperties:   pending,
		PublishedProperties: published,
	}, nil
}
