package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, category_id, name, description, price, stock, image_url, sku, requires_prescription, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	product := &models.Product{}

	var categoryID uuid.NullUUID

	var description, imageURL, sku sql.NullString

	err := row.Scan(&product.ID, &categoryID, &product.Name, &description, &product.Price,
		&product.Stock, &imageURL, &sku, &product.RequiresPrescription, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		product.CategoryID = &categoryID.UUID
	}

	product.Description = description.String
	product.ImageURL = imageURL.String
	product.SKU = sku.String

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (category_id, name, description, price, stock, image_url, sku, requires_prescription)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, product.ImageURL, product.SKU, product.RequiresPrescription).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, stock = $5,
		    image_url = $6, sku = $7, requires_prescription = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, product.ImageURL, product.SKU, product.RequiresPrescription, product.ID).
		Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

// ListProducts applies the allow-listed filters and returns newest first.
// No server-side pagination: the admin views paginate in memory.
func (r *productRepository) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var conditions []string

	var args []any

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	} else if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", len(args)))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	query := `
		SELECT p.id, p.category_id, p.name, p.description, p.price, p.stock,
		       p.image_url, p.sku, p.requires_prescription, p.created_at, p.updated_at,
		       c.id, c.name, c.slug, c.icon
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		var description, imageURL, sku sql.NullString

		var categoryID uuid.NullUUID

		var categoryName, categorySlug, categoryIcon sql.NullString

		err := rows.Scan(&product.ID, &categoryID, &product.Name, &description, &product.Price,
			&product.Stock, &imageURL, &sku, &product.RequiresPrescription, &product.CreatedAt, &product.UpdatedAt,
			&categoryID, &categoryName, &categorySlug, &categoryIcon)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		if categoryID.Valid {
			product.CategoryID = &categoryID.UUID
		}

		product.Description = description.String
		product.ImageURL = imageURL.String
		product.SKU = sku.String

		if categoryID.Valid {
			product.Category = &models.Category{
				ID:   categoryID.UUID,
				Name: categoryName.String,
				Slug: categorySlug.String,
				Icon: categoryIcon.String,
			}
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE category_id = $1 ORDER BY created_at DESC`, productColumns)

	rows, err := r.DB.QueryContext(dbCtx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
