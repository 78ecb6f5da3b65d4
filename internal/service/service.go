package service

import (
	"context"
	"errors"

	"estatehub/internal/config"
	"estatehub/internal/repository"
	"estatehub/internal/storage"
)

// ErrUnauthorized is returned by every operation whose role or ownership
// predicate fails. The message is the exact string the API surfaces.
var ErrUnauthorized = errors.New("Unauthorized")

// Cache is the listing-cache surface the services need: read-through on
// search, namespace invalidation on mutation.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	Auth       AuthService
	Profile    ProfileService
	Property   PropertyService
	Moderation ModerationService
	Listing    ListingService
	Admin      AdminService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, cache Cache) *Service {
	return &Service{
		Auth:       NewAuthService(rep.Profile, cfg),
		Profile:    NewProfileService(rep.Profile, storage),
		Property:   NewPropertyService(rep.Property, storage, cache),
		Moderation: NewModerationService(rep.Property, cache),
		Listing:    NewListingService(rep.Property, cache),
		Admin:      NewAdminService(rep.Profile, rep.Property),
	}
}
