package service

import (
	"context"
	"fmt"
	"log"

	"estatehub/internal/models"
	"estatehub/internal/repository"
)

// ModerationService owns the status state machine: pending -> published,
// pending -> rejected, and re-transitions in either direction once a
// decision has been made. No state is terminal; an admin may always reopen
// a decision. Public visibility is derived from status by the database, so
// entering published is the only thing that makes a listing visible.
type ModerationService interface {
	UpdateStatus(ctx context.Context, principal *models.Principal, propertyID, status string) error
	ToggleSold(ctx context.Context, principal *models.Principal, propertyID string, sold bool) error
}

type moderationService struct {
	propertyRepo repository.PropertyRepository
	cache        Cache
}

func NewModerationService(propertyRepo repository.PropertyRepository, cache Cache) ModerationService {
	return &moderationService{
		propertyRepo: propertyRepo,
		cache:        cache,
	}
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusPublished, models.StatusRejected:
		return true
	}
	return false
}

// UpdateStatus is admin-gated and fails closed: a missing or non-admin
// principal gets ErrUnauthorized and no state change.
func (m *moderationService) UpdateStatus(ctx context.Context, principal *models.Principal, propertyID, status string) error {
	if !principal.IsAdmin() {
		return ErrUnauthorized
	}

	if !validStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}

	if err := m.propertyRepo.UpdateStatus(ctx, propertyID, status); err != nil {
		return err
	}

	m.invalidateListings(ctx)

	return nil
}

// ToggleSold is owner-scoped, not admin-gated: the repository predicate
// matches on owner_id, and the write is an absolute set, so repeating the
// same value is a no-op. Sold state is independent of moderation state.
func (m *moderationService) ToggleSold(ctx context.Context, principal *models.Principal, propertyID string, sold bool) error {
	if principal == nil {
		return ErrUnauthorized
	}

	if err := m.propertyRepo.SetSold(ctx, propertyID, principal.ID, sold); err != nil {
		return err
	}

	m.invalidateListings(ctx)

	return nil
}

func (m *moderationService) invalidateListings(ctx context.Context) {
	if err := m.cache.Invalidate(ctx); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}
