package repository

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound covers both a missing row and an ownership mismatch: the
// owner-scoped queries filter by id AND owner_id, so the two cases are
// indistinguishable and are deliberately reported as one.
var ErrNotFound = errors.New("not found or no permission")

// SearchCriteria is the public listing filter. Zero values mean "no
// constraint on that attribute", never "must equal zero".
type SearchCriteria struct {
	Emirate      string
	Community    string
	Type         string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Bedrooms     int
	Bathrooms    int
	MinArea      float64
	MaxArea      float64
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile, password string) error
	GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	UpdateRole(ctx context.Context, profileID, role string) error
	ToggleVerification(ctx context.Context, profileID string) (bool, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error)
	UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error
	GetProfileByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error)
	ListProfiles(ctx context.Context, search string, limit, offset int) ([]models.Profile, int, error)
	CountProfiles(ctx context.Context) (int, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, propertyID, ownerID string) error
	GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]models.Property, error)
	UpdateStatus(ctx context.Context, propertyID, status string) error
	SetSold(ctx context.Context, propertyID, ownerID string, sold bool) error
	ListAdmin(ctx context.Context, status, search string, limit, offset int) ([]models.AdminPropertyRow, int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type Repository struct {
	Profile  ProfileRepository
	Property PropertyRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Profile:  NewProfileRepository(db),
		Property: NewPropertyRepository(db),
	}
}
