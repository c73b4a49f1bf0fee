package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID                   uuid.UUID       `json:"id"`
	CategoryID           *uuid.UUID      `json:"category_id,omitempty"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Price                decimal.Decimal `json:"price"`
	Stock                int             `json:"stock"`
	ImageURL             string          `json:"image_url,omitempty"`
	SKU                  string          `json:"sku,omitempty"`
	RequiresPrescription bool            `json:"requires_prescription"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Category             *Category       `json:"category,omitempty"`
}

type CreateProductRequest struct {
	CategoryID           *uuid.UUID      `json:"category_id,omitempty"`
	Name                 string          `json:"name" validate:"required,min=2,max=200"`
	Description          string          `json:"description,omitempty"`
	Price                decimal.Decimal `json:"price" validate:"required"`
	Stock                *int            `json:"stock" validate:"required,gte=0"`
	ImageURL             string          `json:"image_url,omitempty" validate:"omitempty,url"`
	SKU                  string          `json:"sku,omitempty" validate:"omitempty,max=50"`
	RequiresPrescription bool            `json:"requires_prescription,omitempty"`
}

type UpdateProductRequest struct {
	CategoryID           *uuid.UUID       `json:"category_id,omitempty"`
	Name                 *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description          *string          `json:"description,omitempty"`
	Price                *decimal.Decimal `json:"price,omitempty"`
	Stock                *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL             *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	SKU                  *string          `json:"sku,omitempty" validate:"omitempty,max=50"`
	RequiresPrescription *bool            `json:"requires_prescription,omitempty"`
}

// ProductFilter carries the allow-listed query parameters for GET /products.
type ProductFilter struct {
	Category   string
	CategoryID *uuid.UUID
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}
