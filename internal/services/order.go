package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/cart"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	ListOrders(ctx context.Context, filter *models.OrderFilter) ([]*models.Order, error)
}

type orderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    NotificationService
	pricing     cart.Pricing
}

func NewOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository, notifier NotificationService, cfg *config.Pricing) (OrderService, error) {
	shippingFee, err := decimal.NewFromString(cfg.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("invalid shipping fee %q: %w", cfg.ShippingFee, err)
	}

	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", cfg.TaxRate, err)
	}

	return &orderService{
		repo:        repo,
		productRepo: productRepo,
		notifier:    notifier,
		pricing:     cart.Pricing{ShippingFee: shippingFee, TaxRate: taxRate},
	}, nil
}

// CreateOrder snapshots the requested cart into a persisted order. Names and
// unit prices come from the catalog at this moment; later price changes never
// alter the placed order.
func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.ValidationError("Cannot create order with empty cart")
	}

	checkout := cart.New()

	for _, item := range req.Items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.NotFoundError("Product not found: " + item.ProductID.String()).WithError(err)
		}

		if product.Stock < item.Quantity {
			return nil, errors.BadRequestError("Insufficient stock for product: " + product.Name)
		}

		checkout.AddItem(product.ID, product.Name, product.Price)
		checkout.SetQuantity(product.ID, item.Quantity)
	}

	totals := checkout.ComputeTotals(s.pricing)

	items := make([]models.OrderItem, 0, len(checkout.Lines))
	for _, line := range checkout.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	address := req.ShippingAddress

	order := &models.Order{
		OrderNumber:     utils.GenerateNumber("ORD"),
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Items:           items,
		ShippingAddress: &address,
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          models.OrderStatusPending,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	for _, item := range order.Items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		product.Stock -= item.Quantity

		if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
			return nil, errors.DatabaseError("Failed to update inventory").WithError(err)
		}
	}

	s.notifyBestEffort(ctx, order.CustomerEmail,
		"Order confirmation: "+order.OrderNumber,
		fmt.Sprintf("Dear %s,\n\nThank you for your order. Your reference is %s and the total is %s.\n\nWe will email you again when it ships.",
			order.CustomerName, order.OrderNumber, order.Total.StringFixed(2)))

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

// UpdateOrder edits contact and shipping details. The item snapshot and totals
// are immutable after checkout.
func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}

	if req.CustomerEmail != nil {
		order.CustomerEmail = *req.CustomerEmail
	}

	if req.ShippingAddress != nil {
		order.ShippingAddress = req.ShippingAddress
	}

	if req.Status != nil {
		order.Status = *req.Status
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to update order").WithError(err)
	}

	return order, nil
}

// UpdateStatus overwrites the status unconditionally within the fixed
// vocabulary; the admin back-office owns the transition discipline.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.Status != status {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, errors.DatabaseError("Failed to update order status").WithError(err)
		}

		order.Status = status

		s.notifyBestEffort(ctx, order.CustomerEmail,
			"Order update: "+order.OrderNumber,
			fmt.Sprintf("Dear %s,\n\nYour order %s is now %s.",
				order.CustomerName, order.OrderNumber, status))
	}

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return errors.NotFoundError("Order not found").WithError(err)
	}

	return nil
}

func (s *orderService) ListOrders(ctx context.Context, filter *models.OrderFilter) ([]*models.Order, error) {
	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *orderService) notifyBestEffort(ctx context.Context, recipient, subject, content string) {
	if s.notifier == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	if err := s.notifier.SendEmail(ctx, &models.EmailNotificationRequest{
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
	}); err != nil {
		// Email failures never fail the checkout.
		logger.Warn("Failed to send order email", slog.Any("error", err))
	}
}
