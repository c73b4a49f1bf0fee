package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryRepoTest(t *testing.T) (repository.CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewCategoryRepo(db)
	require.NotNil(t, repo, "NewCategoryRepo should return a non-nil repository")

	return repo, mock
}

var categoryCols = []string{"id", "name", "slug", "description", "icon", "created_at"}

func TestCreateCategory(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	categoryID := uuid.New()
	now := time.Now()

	category := &models.Category{
		Name:        "Pain Relief",
		Slug:        "pain-relief",
		Description: "Analgesics and anti-inflammatories",
		Icon:        "pill",
	}

	insertSQL := regexp.QuoteMeta(`INSERT INTO categories`)

	t.Run("Success - Create Category", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).
			WithArgs(category.Name, category.Slug, category.Description, category.Icon).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(categoryID.String(), now))

		err := repo.CreateCategory(ctx, category)

		require.NoError(t, err, "CreateCategory should succeed")
		assert.Equal(t, categoryID, category.ID, "ID should be populated from the database")
	})

	t.Run("Failure - Duplicate Slug", func(t *testing.T) {
		pqErr := &pq.Error{Code: "23505", Constraint: "categories_slug_key"}
		mock.ExpectQuery(insertSQL).
			WithArgs(category.Name, category.Slug, category.Description, category.Icon).
			WillReturnError(pqErr)

		err := repo.CreateCategory(ctx, category)

		require.Error(t, err, "CreateCategory should surface the constraint error")
		assert.True(t, repository.IsUniqueViolation(err, "categories_slug_key"))
	})
}

func TestListCategories(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	listSQL := regexp.QuoteMeta(`FROM categories ORDER BY name`)

	t.Run("Success - Alphabetical Listing", func(t *testing.T) {
		rows := sqlmock.NewRows(categoryCols).
			AddRow(uuid.NewString(), "First Aid", "first-aid", nil, nil, now).
			AddRow(uuid.NewString(), "Pain Relief", "pain-relief", "Analgesics", "pill", now)
		mock.ExpectQuery(listSQL).WillReturnRows(rows)

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "First Aid", categories[0].Name)
		assert.Empty(t, categories[0].Description, "NULL description should scan to an empty string")
		assert.Equal(t, "pill", categories[1].Icon)
	})

	t.Run("Success - Empty", func(t *testing.T) {
		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(categoryCols))

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestDeleteCategory(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	categoryID := uuid.New()

	deleteSQL := regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)

	t.Run("Success - Delete Category", func(t *testing.T) {
		mock.ExpectExec(deleteSQL).WithArgs(categoryID).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteCategory(ctx, categoryID)

		assert.NoError(t, err, "DeleteCategory should succeed")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectExec(deleteSQL).WithArgs(categoryID).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteCategory(ctx, categoryID)

		assert.ErrorIs(t, err, sql.ErrNoRows, "DeleteCategory should report a missing row")
	})
}

func TestUpsertCategories(t *testing.T) {
	repo, mock := setupCategoryRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	seed := []models.Category{
		{Name: "Vitamins", Slug: "vitamins", Description: "Supplements", Icon: "capsule"},
		{Name: "Skin Care", Slug: "skin-care", Description: "Topicals", Icon: "lotion"},
	}

	upsertSQL := regexp.QuoteMeta(`ON CONFLICT (slug) DO UPDATE`)

	t.Run("Success - Seed Is Idempotent Per Slug", func(t *testing.T) {
		for _, c := range seed {
			mock.ExpectQuery(upsertSQL).
				WithArgs(c.Name, c.Slug, c.Description, c.Icon).
				WillReturnRows(sqlmock.NewRows(categoryCols).
					AddRow(uuid.NewString(), c.Name, c.Slug, c.Description, c.Icon, now))
		}

		categories, err := repo.UpsertCategories(ctx, seed)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "vitamins", categories[0].Slug)
		assert.Equal(t, "skin-care", categories[1].Slug)
	})

	t.Run("Failure - Upsert Error", func(t *testing.T) {
		mock.ExpectQuery(upsertSQL).
			WithArgs(seed[0].Name, seed[0].Slug, seed[0].Description, seed[0].Icon).
			WillReturnError(sql.ErrConnDone)

		categories, err := repo.UpsertCategories(ctx, seed)

		require.Error(t, err)
		assert.Nil(t, categories)
		assert.ErrorContains(t, err, "failed to upsert category")
	})
}
