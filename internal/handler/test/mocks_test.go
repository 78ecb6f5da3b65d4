package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"estatehub/internal/models"
	"estatehub/internal/repository"
	"estatehub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Profile, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.Profile), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) GenerateAccessToken(profile *models.Profile) (string, error) {
	args := m.Called(profile)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) PrincipalFromToken(tokenString string) (*models.Principal, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, principal *models.Principal) (*models.Profile, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, principal *models.Principal, req service.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, principal *models.Principal, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, principal, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, principal *models.Principal, req service.CreatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, principal *models.Principal, propertyID string, req service.UpdatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, principal, propertyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, principal *models.Principal, propertyID string) error {
	args := m.Called(ctx, principal, propertyID)
	return args.Error(0)
}

func (m *MockPropertyService) GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyWithOwner), args.Error(1)
}

func (m *MockPropertyService) ListByOwner(ctx context.Context, principal *models.Principal) ([]models.Property, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) UploadImages(ctx context.Context, principal *models.Principal, files []service.UploadFile) ([]string, int, error) {
	args := m.Called(ctx, principal, files)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Int(1), args.Error(2)
}

func (m *MockPropertyService) UploadDocument(ctx context.Context, principal *models.Principal, kind, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, principal, kind, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) UpdateStatus(ctx context.Context, principal *models.Principal, propertyID, status string) error {
	args := m.Called(ctx, principal, propertyID, status)
	return args.Error(0)
}

func (m *MockModerationService) ToggleSold(ctx context.Context, principal *models.Principal, propertyID string, sold bool) error {
	args := m.Called(ctx, principal, propertyID, sold)
	return args.Error(0)
}

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.Property, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context, principal *models.Principal, page, limit int, search string) (*service.UserPage, error) {
	args := m.Called(ctx, principal, page, limit, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserPage), args.Error(1)
}

func (m *MockAdminService) UpdateUserRole(ctx context.Context, principal *models.Principal, userID, role string) error {
	args := m.Called(ctx, principal, userID, role)
	return args.Error(0)
}

func (m *MockAdminService) ToggleUserVerification(ctx context.Context, principal *models.Principal, userID string) (bool, error) {
	args := m.Called(ctx, principal, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) ListPendingProperties(ctx context.Context, principal *models.Principal, page, limit int) (*service.PropertyPage, error) {
	args := m.Called(ctx, principal, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PropertyPage), args.Error(1)
}

func (m *MockAdminService) ListAllProperties(ctx context.Context, principal *models.Principal, page, limit int, status, search string) (*service.PropertyPage, error) {
	args := m.Called(ctx, principal, page, limit, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PropertyPage), args.Error(1)
}

func (m *MockAdminService) Stats(ctx context.Context, principal *models.Principal) (*service.AdminStats, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminStats), args.Error(1)
}
