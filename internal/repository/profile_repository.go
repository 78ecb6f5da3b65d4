package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"estatehub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *models.Profile, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	profile.ID = uuid.New().String()
	profile.PasswordHash = string(hashedPassword)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles
		(id, email, password_hash, full_name, phone, whatsapp, role, avatar_url,
		 is_verified, refresh_token, refresh_token_expiry_time, created_at, updated_at)
		VALUES
		(:id, :email, :password_hash, :full_name, :phone, :whatsapp, :role, :avatar_url,
		 :is_verified, :refresh_token, :refresh_token_expiry_time, :created_at, :updated_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *profileRepository) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &profile, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile with ID %s not found", profileID)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile

	query := `SELECT * FROM profiles WHERE email = $1`

	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := r.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid password")
	}

	return profile, nil
}

// UpdateProfile rewrites the self-editable fields. Role changes through this
// path are limited by the service layer; verification and admin role grants
// go through the dedicated admin methods.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = :full_name,
			phone = :phone,
			whatsapp = :whatsapp,
			role = :role,
			avatar_url = :avatar_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	profile.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("profile with ID %s not found", profile.ID)
	}

	return nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, profileID, role string) error {
	query := `
		UPDATE profiles SET
			role = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, role, profileID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("profile with ID %s not found", profileID)
	}

	return nil
}

// ToggleVerification flips is_verified and returns the new value.
func (r *profileRepository) ToggleVerification(ctx context.Context, profileID string) (bool, error) {
	query := `
		UPDATE profiles SET
			is_verified = NOT is_verified,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING is_verified
	`

	var verified bool
	err := r.db.GetContext(ctx, &verified, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("profile with ID %s not found", profileID)
		}
		return false, fmt.Errorf("failed to toggle verification: %w", err)
	}

	return verified, nil
}

func (r *profileRepository) UpdateRefreshToken(ctx context.Context, profileID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, profileID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	return nil
}

func (r *profileRepository) GetProfileByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	var profile models.Profile

	query := `
		SELECT * FROM profiles
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &profile, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid or expired refresh token")
		}
		return nil, fmt.Errorf("failed to get profile by refresh token: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context, search string, limit, offset int) ([]models.Profile, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM profiles WHERE %s`, where)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT * FROM profiles
		WHERE %s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	var profiles []models.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *profileRepository) CountProfiles(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM profiles`)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}
