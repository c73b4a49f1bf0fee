package service

import (
	"context"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/google/uuid"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListCategoryProducts(ctx context.Context, id uuid.UUID) ([]*models.Product, error)
	SeedCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

func NewCategoryService(repo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{repo: repo, productRepo: productRepo}
}

// defaultCategories is the storefront's standard set, applied by the seed
// endpoint. Upserted by slug, so reseeding never duplicates.
var defaultCategories = []models.Category{
	{Name: "Pain Relief", Slug: "pain-relief", Description: "Analgesics and anti-inflammatories", Icon: "pill"},
	{Name: "Cold & Flu", Slug: "cold-flu", Description: "Cough, cold and flu remedies", Icon: "thermometer"},
	{Name: "Vitamins & Supplements", Slug: "vitamins", Description: "Daily vitamins and dietary supplements", Icon: "capsule"},
	{Name: "First Aid", Slug: "first-aid", Description: "Bandages, antiseptics and wound care", Icon: "bandage"},
	{Name: "Skin Care", Slug: "skin-care", Description: "Dermatological creams and lotions", Icon: "lotion"},
	{Name: "Baby & Mother", Slug: "baby-mother", Description: "Infant nutrition and maternal care", Icon: "baby"},
	{Name: "Medical Devices", Slug: "medical-devices", Description: "Monitors, thermometers and aids", Icon: "stethoscope"},
	{Name: "Prescription Medicines", Slug: "prescription", Description: "Dispensed against a valid prescription", Icon: "rx"},
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, errors.DuplicateEntryError("A category with this slug already exists").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if req.Slug != nil {
		category.Slug = *req.Slug
	}

	if req.Description != nil {
		category.Description = *req.Description
	}

	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, errors.DuplicateEntryError("A category with this slug already exists").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

// DeleteCategory refuses to remove a category that still has products, so the
// catalog never ends up with dangling references.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to check category usage").WithError(err)
	}

	if count > 0 {
		return errors.ConflictError("Category still has products assigned to it")
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return errors.NotFoundError("Category not found").WithError(err)
	}

	return nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) ListCategoryProducts(ctx context.Context, id uuid.UUID) ([]*models.Product, error) {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	products, err := s.productRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch category products").WithError(err)
	}

	return products, nil
}

func (s *categoryService) SeedCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.UpsertCategories(ctx, defaultCategories)
	if err != nil {
		return nil, errors.DatabaseError("Failed to seed categories").WithError(err)
	}

	return categories, nil
}
