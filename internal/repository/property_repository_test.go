package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func testProperty() *models.Property {
	return &models.Property{
		OwnerID:      "owner-1",
		Title:        "2BR in Marina",
		Description:  "Sea view",
		Price:        120000,
		Type:         models.TypeRent,
		Location:     "Dubai Marina, Dubai",
		Emirate:      "Dubai",
		Community:    "Dubai Marina",
		Bedrooms:     2,
		Bathrooms:    2,
		Area:         1200,
		PropertyType: "Apartment",
		Furnished:    "Unfurnished",
		Amenities:    []string{"Pool", "Gym"},
		Images:       []string{"https://cdn.example.com/a.jpg"},
		IDDocument:   "https://cdn.example.com/id.pdf",
		OwnershipDoc: "https://cdn.example.com/deed.pdf",
	}
}

func TestPropertyRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("generates id and forces pending status", func(t *testing.T) {
		property := testProperty()
		property.Status = models.StatusPublished // callers cannot self-publish

		mock.ExpectExec(`INSERT INTO properties`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, property)

		assert.NoError(t, err)
		assert.NotEmpty(t, property.ID)
		assert.Equal(t, models.StatusPending, property.Status)
		assert.False(t, property.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps a caller-provided id", func(t *testing.T) {
		property := testProperty()
		property.ID = "fixed-id"

		mock.ExpectExec(`INSERT INTO properties`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, property)

		assert.NoError(t, err)
		assert.Equal(t, "fixed-id", property.ID)
	})

	t.Run("wraps database errors", func(t *testing.T) {
		property := testProperty()

		mock.ExpectExec(`INSERT INTO properties`).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, property)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create property")
	})
}

func TestPropertyRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("updates when id and owner match", func(t *testing.T) {
		property := testProperty()
		property.ID = "prop-1"

		mock.ExpectExec(`UPDATE properties SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, property)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means not found or wrong owner", func(t *testing.T) {
		property := testProperty()
		property.ID = "prop-1"
		property.OwnerID = "someone-else"

		mock.ExpectExec(`UPDATE properties SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, property)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPropertyRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("deletes own property", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM properties WHERE id = \$1 AND owner_id = \$2`).
			WithArgs("prop-1", "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "prop-1", "owner-1")

		assert.NoError(t, err)
	})

	t.Run("zero rows means not found or wrong owner", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM properties WHERE id = \$1 AND owner_id = \$2`).
			WithArgs("prop-1", "intruder").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "prop-1", "intruder")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPropertyRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("assembles owner and documents", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "owner_id", "title", "status", "id_document", "ownership_document",
			"owner_full_name", "owner_phone", "owner_is_verified", "owner_role",
		}).AddRow(
			"prop-1", "owner-1", "2BR in Marina", models.StatusPublished,
			"https://cdn.example.com/id.pdf", "",
			"Sara", "+9715...", true, models.RoleOwner,
		)

		mock.ExpectQuery(`FROM properties p\s+JOIN profiles pr ON pr\.id = p\.owner_id\s+WHERE p\.id = \$1`).
			WithArgs("prop-1").
			WillReturnRows(rows)

		got, err := repo.GetByID(ctx, "prop-1")

		require.NoError(t, err)
		assert.Equal(t, "prop-1", got.ID)
		assert.Equal(t, "Sara", got.Owner.FullName)
		assert.True(t, got.Owner.IsVerified)
		// only the non-empty document URL survives
		require.Len(t, got.Documents, 1)
		assert.Equal(t, "id", got.Documents[0].Kind)
	})

	t.Run("missing property maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`WHERE p\.id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPropertyRepository_ListByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "status"}).
		AddRow("prop-2", "owner-1", "Newest", models.StatusPending).
		AddRow("prop-1", "owner-1", "Oldest", models.StatusPublished)

	mock.ExpectQuery(`SELECT \* FROM properties\s+WHERE owner_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("owner-1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(ctx, "owner-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	// the dashboard shows every status, pending included
	assert.Equal(t, models.StatusPending, got[0].Status)
}

func TestPropertyRepository_Search(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	emptyRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "owner_id", "title", "status"})
	}

	t.Run("no criteria still filters to published", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_published = TRUE\s+ORDER BY created_at DESC`).
			WillReturnRows(emptyRows())

		_, err := repo.Search(ctx, SearchCriteria{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero-valued criteria add no clause", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_published = TRUE\s+ORDER BY created_at DESC`).
			WillReturnRows(emptyRows())

		_, err := repo.Search(ctx, SearchCriteria{Bedrooms: 0, MinPrice: 0, MaxArea: 0})

		assert.NoError(t, err)
	})

	t.Run("criteria are layered onto the published predicate", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_published = TRUE AND emirate ILIKE \$1 AND type = \$2 AND bedrooms >= \$3`).
			WithArgs("Dubai", models.TypeRent, 2).
			WillReturnRows(emptyRows())

		_, err := repo.Search(ctx, SearchCriteria{
			Emirate:  "Dubai",
			Type:     models.TypeRent,
			Bedrooms: 2,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("community matches as substring", func(t *testing.T) {
		mock.ExpectQuery(`community ILIKE \$1`).
			WithArgs("%Marina%").
			WillReturnRows(emptyRows())

		_, err := repo.Search(ctx, SearchCriteria{Community: "Marina"})

		assert.NoError(t, err)
	})

	t.Run("unknown type value is ignored", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_published = TRUE\s+ORDER BY created_at DESC`).
			WillReturnRows(emptyRows())

		_, err := repo.Search(ctx, SearchCriteria{Type: "lease-to-own"})

		assert.NoError(t, err)
	})
}

func TestPropertyRepository_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("sets status by id", func(t *testing.T) {
		mock.ExpectExec(`UPDATE properties SET`).
			WithArgs(models.StatusPublished, "prop-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "prop-1", models.StatusPublished)

		assert.NoError(t, err)
	})

	t.Run("missing property maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE properties SET`).
			WithArgs(models.StatusRejected, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", models.StatusRejected)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPropertyRepository_SetSold(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("writes the absolute value", func(t *testing.T) {
		mock.ExpectExec(`UPDATE properties SET`).
			WithArgs(true, "prop-1", "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetSold(ctx, "prop-1", "owner-1", true)

		assert.NoError(t, err)
	})

	t.Run("repeated call with same value still succeeds", func(t *testing.T) {
		mock.ExpectExec(`UPDATE properties SET`).
			WithArgs(true, "prop-1", "owner-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetSold(ctx, "prop-1", "owner-1", true)

		assert.NoError(t, err)
	})

	t.Run("wrong owner maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE properties SET`).
			WithArgs(false, "prop-1", "intruder").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetSold(ctx, "prop-1", "intruder", false)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPropertyRepository_ListAdmin(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("status and search filters with total", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties p WHERE TRUE AND p\.status = \$1 AND p\.title ILIKE \$2`).
			WithArgs(models.StatusPending, "%villa%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "status", "owner_full_name"}).
			AddRow("prop-1", "owner-1", "Villa with garden", models.StatusPending, "Sara")

		mock.ExpectQuery(`JOIN profiles pr ON pr\.id = p\.owner_id`).
			WithArgs(models.StatusPending, "%villa%", 20, 0).
			WillReturnRows(rows)

		got, total, err := repo.ListAdmin(ctx, models.StatusPending, "villa", 20, 0)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, got, 1)
		assert.Equal(t, "Sara", got[0].OwnerName)
	})

	t.Run("status all disables the status filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties p WHERE TRUE$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`WHERE TRUE\s+ORDER BY p\.created_at DESC`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title", "status", "owner_full_name"}))

		_, total, err := repo.ListAdmin(ctx, "all", "", 20, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestPropertyRepository_CountByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties WHERE status = \$1`).
		WithArgs(models.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(ctx, models.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
