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
)

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	// New properties always enter moderation as pending, regardless of what
	// the caller put in the struct.
	property.Status = models.StatusPending

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	query := `
		INSERT INTO properties
		(id, owner_id, title, description, price, type, location, emirate, community,
		 bedrooms, bathrooms, area, parking, property_type, year_built, available_from,
		 furnished, amenities, images, id_document, ownership_document, status,
		 is_sold, created_at, updated_at)
		VALUES
		(:id, :owner_id, :title, :description, :price, :type, :location, :emirate, :community,
		 :bedrooms, :bathrooms, :area, :parking, :property_type, :year_built, :available_from,
		 :furnished, :amenities, :images, :id_document, :ownership_document, :status,
		 :is_sold, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, property)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// Update rewrites the owner-editable content fields. The WHERE clause carries
// the ownership predicate, so a mismatched owner and a missing id both come
// back as zero rows affected. Status, is_published and owner_id are never
// touched here.
func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties SET
			title = :title,
			description = :description,
			price = :price,
			type = :type,
			location = :location,
			emirate = :emirate,
			community = :community,
			bedrooms = :bedrooms,
			bathrooms = :bathrooms,
			area = :area,
			parking = :parking,
			property_type = :property_type,
			year_built = :year_built,
			available_from = :available_from,
			furnished = :furnished,
			amenities = :amenities,
			images = :images,
			updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id
	`

	property.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, property)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, propertyID, ownerID string) error {
	query := `DELETE FROM properties WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, propertyID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, propertyID string) (*models.PropertyWithOwner, error) {
	query := `
		SELECT p.*,
			pr.full_name AS owner_full_name,
			pr.avatar_url AS owner_avatar_url,
			pr.phone AS owner_phone,
			pr.whatsapp AS owner_whatsapp,
			pr.is_verified AS owner_is_verified,
			pr.role AS owner_role
		FROM properties p
		JOIN profiles pr ON pr.id = p.owner_id
		WHERE p.id = $1
	`

	// Flat scan target: sqlx maps the aliased owner_* columns onto the
	// embedded OwnerProfile.
	var row struct {
		models.Property
		models.OwnerProfile
	}
	err := r.db.GetContext(ctx, &row, query, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	property := models.PropertyWithOwner{
		Property: row.Property,
		Owner:    row.OwnerProfile,
	}
	property.Documents = property.DocumentList()

	return &property, nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	query := `
		SELECT * FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var properties []models.Property
	err := r.db.SelectContext(ctx, &properties, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner properties: %w", err)
	}

	return properties, nil
}

// Search composes the public listing query. The published-only predicate is
// unconditional; caller criteria are layered on top of it. Zero-valued
// criteria add no clause.
func (r *propertyRepository) Search(ctx context.Context, criteria SearchCriteria) ([]models.Property, error) {
	conditions := []string{"is_published = TRUE"}
	args := []interface{}{}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if criteria.Emirate != "" {
		conditions = append(conditions, fmt.Sprintf("emirate ILIKE %s", addArg(criteria.Emirate)))
	}
	if criteria.Community != "" {
		conditions = append(conditions, fmt.Sprintf("community ILIKE %s", addArg("%"+criteria.Community+"%")))
	}
	if criteria.Type == models.TypeRent || criteria.Type == models.TypeSell {
		conditions = append(conditions, fmt.Sprintf("type = %s", addArg(criteria.Type)))
	}
	if criteria.PropertyType != "" {
		conditions = append(conditions, fmt.Sprintf("property_type ILIKE %s", addArg(criteria.PropertyType)))
	}
	if criteria.MinPrice > 0 {
		conditions = append(conditions, fmt.Sprintf("price >= %s", addArg(criteria.MinPrice)))
	}
	if criteria.MaxPrice > 0 {
		conditions = append(conditions, fmt.Sprintf("price <= %s", addArg(criteria.MaxPrice)))
	}
	if criteria.Bedrooms > 0 {
		conditions = append(conditions, fmt.Sprintf("bedrooms >= %s", addArg(criteria.Bedrooms)))
	}
	if criteria.Bathrooms > 0 {
		conditions = append(conditions, fmt.Sprintf("bathrooms >= %s", addArg(criteria.Bathrooms)))
	}
	if criteria.MinArea > 0 {
		conditions = append(conditions, fmt.Sprintf("area >= %s", addArg(criteria.MinArea)))
	}
	if criteria.MaxArea > 0 {
		conditions = append(conditions, fmt.Sprintf("area <= %s", addArg(criteria.MaxArea)))
	}

	query := fmt.Sprintf(`
		SELECT * FROM properties
		WHERE %s
		ORDER BY created_at DESC
	`, strings.Join(conditions, " AND "))

	var properties []models.Property
	err := r.db.SelectContext(ctx, &properties, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, propertyID, status string) error {
	query := `
		UPDATE properties SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, propertyID)
	if err != nil {
		return fmt.Errorf("failed to update property status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SetSold writes the absolute value, not a flip, so repeated calls with the
// same argument are no-ops.
func (r *propertyRepository) SetSold(ctx context.Context, propertyID, ownerID string, sold bool) error {
	query := `
		UPDATE properties SET
			is_sold = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND owner_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, sold, propertyID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update sold flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *propertyRepository) ListAdmin(ctx context.Context, status, search string, limit, offset int) ([]models.AdminPropertyRow, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if status != "" && status != "all" {
		conditions = append(conditions, fmt.Sprintf("p.status = %s", addArg(status)))
	}
	if search != "" {
		conditions = append(conditions, fmt.Sprintf("p.title ILIKE %s", addArg("%"+search+"%")))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM properties p WHERE %s`, where)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.*, pr.full_name AS owner_full_name
		FROM properties p
		JOIN profiles pr ON pr.id = p.owner_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT %s OFFSET %s
	`, where, addArg(limit), addArg(offset))

	var rows []models.AdminPropertyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	return rows, total, nil
}

func (r *propertyRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM properties WHERE status = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}

	return count, nil
}
