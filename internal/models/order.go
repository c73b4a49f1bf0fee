package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country,omitempty"`
}

// OrderItem is a snapshot of a cart line at checkout. Later catalog price
// changes never alter a placed order.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerID      *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress *Address        `json:"shipping_address"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItemRequest references a catalog product; name and unit price are
// snapshotted server-side at checkout, never taken from the client.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID      *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName    string             `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress Address            `json:"shipping_address" validate:"required"`
}

type UpdateOrderRequest struct {
	CustomerName    *string      `json:"customer_name,omitempty" validate:"omitempty,min=2,max=200"`
	CustomerEmail   *string      `json:"customer_email,omitempty" validate:"omitempty,email"`
	ShippingAddress *Address     `json:"shipping_address,omitempty"`
	Status          *OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending processing shipped completed cancelled"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending processing shipped completed cancelled"`
}

type OrderFilter struct {
	Status     OrderStatus
	CustomerID *uuid.UUID
}
