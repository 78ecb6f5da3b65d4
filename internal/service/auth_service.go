package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/models"
	"estatehub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=owner renter broker"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, error)
	Login(ctx context.Context, email, password string) (*models.Profile, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error)
	GenerateAccessToken(profile *models.Profile) (string, error)
	PrincipalFromToken(tokenString string) (*models.Principal, error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewAuthService(profileRepo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, error) {
	existingProfile, err := s.profileRepo.GetProfileByEmail(ctx, req.Email)
	if err == nil && existingProfile != nil {
		return nil, fmt.Errorf("profile with email %s already exists", req.Email)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	profile := &models.Profile{
		Email:                  req.Email,
		FullName:               req.FullName,
		Phone:                  req.Phone,
		Role:                   req.Role,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	err = s.profileRepo.CreateProfile(ctx, profile, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Profile, string, string, error) {
	profile, err := s.profileRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("authentication failed: %w", err)
	}

	accessToken, err := s.GenerateAccessToken(profile)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.profileRepo.UpdateRefreshToken(ctx, profile.ID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return profile, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Profile, string, string, error) {
	profile, err := s.profileRepo.GetProfileByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	accessToken, err := s.GenerateAccessToken(profile)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.profileRepo.UpdateRefreshToken(ctx, profile.ID, newRefreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return profile, accessToken, newRefreshToken, nil
}

func (s *authService) GenerateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"userId": profile.ID,
		"email":  profile.Email,
		"role":   profile.Role,
		"exp":    time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

// PrincipalFromToken resolves the authenticated principal from a bearer
// token. Any parse or claims problem yields a nil principal and an error;
// callers fail closed.
func (s *authService) PrincipalFromToken(tokenString string) (*models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	userID, ok1 := claims["userId"].(string)
	email, ok2 := claims["email"].(string)
	role, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("invalid token payload")
	}

	return &models.Principal{
		ID:    userID,
		Email: email,
		Role:  role,
	}, nil
}
