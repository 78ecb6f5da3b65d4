package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"estatehub/internal/models"
	"estatehub/internal/repository"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, propertyID, ownerID string) error {
	args := m.Called(ctx, propertyID, ownerID)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyWithOwner), args.Error(1)
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.Property, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyRepository) UpdateStatus(ctx context.Context, propertyID, status string) error {
	args := m.Called(ctx, propertyID, status)
	return args.Error(0)
}

func (m *MockPropertyRepository) SetSold(ctx context.Context, propertyID, ownerID string, sold bool) error {
	args := m.Called(ctx, propertyID, ownerID, sold)
	return args.Error(0)
}

func (m *MockPropertyRepository) ListAdmin(ctx context.Context, status, search string, limit, offset int) ([]models.AdminPropertyRow, int, error) {
	args := m.Called(ctx, status, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AdminPropertyRow), args.Int(1), args.Error(2)
}

func (m *MockPropertyRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	args := m.Called(ctx, profile, password)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, profileID, role string) error {
	args := m.Called(ctx, profileID, role)
	return args.Error(0)
}

func (m *MockProfileRepository) ToggleVerification(ctx context.Context, profileID string) (bool, error) {
	args := m.Called(ctx, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, profileID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, search string, limit, offset int) ([]models.Profile, int, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Profile), args.Int(1), args.Error(2)
}

func (m *MockProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// noopCache is for tests that do not care about caching behavior.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value interface{}) error        { return nil }
func (noopCache) Invalidate(ctx context.Context) error                                { return nil }

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadPropertyImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, ownerID, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) UploadDocument(ctx context.Context, ownerID, kind, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, ownerID, kind, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) UploadAvatar(ctx context.Context, profileID, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, profileID, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Remove(ctx context.Context, bucket, objectName string) error {
	args := m.Called(ctx, bucket, objectName)
	return args.Error(0)
}
