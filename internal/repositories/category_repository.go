package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpsertCategories(ctx context.Context, categories []models.Category) ([]*models.Category, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO categories (name, slug, description, icon)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, category.Name, category.Slug, category.Description, category.Icon).
		Scan(&category.ID, &category.CreatedAt)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	var description, icon sql.NullString

	query := `SELECT id, name, slug, description, icon, created_at FROM categories WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&category.ID, &category.Name, &category.Slug, &description, &icon, &category.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	category.Description = description.String
	category.Icon = icon.String

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE categories SET name = $1, slug = $2, description = $3, icon = $4 WHERE id = $5`

	result, err := r.DB.ExecContext(dbCtx, query, category.Name, category.Slug, category.Description, category.Icon, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, slug, description, icon, created_at FROM categories ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category := &models.Category{}

		var description, icon sql.NullString

		err := rows.Scan(&category.ID, &category.Name, &category.Slug, &description, &icon, &category.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		category.Description = description.String
		category.Icon = icon.String

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// UpsertCategories inserts the given categories, keeping existing rows on slug
// conflicts up to date. Used by the idempotent seed endpoint.
func (r *categoryRepository) UpsertCategories(ctx context.Context, categories []models.Category) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (name, slug, description, icon)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, icon = EXCLUDED.icon
		RETURNING id, name, slug, description, icon, created_at
	`

	results := make([]*models.Category, 0, len(categories))

	for _, c := range categories {
		seeded := &models.Category{}

		var description, icon sql.NullString

		err := r.DB.QueryRowContext(dbCtx, query, c.Name, c.Slug, c.Description, c.Icon).
			Scan(&seeded.ID, &seeded.Name, &seeded.Slug, &description, &icon, &seeded.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert category %q: %w", c.Slug, err)
		}

		seeded.Description = description.String
		seeded.Icon = icon.String

		results = append(results, seeded)
	}

	return results, nil
}
