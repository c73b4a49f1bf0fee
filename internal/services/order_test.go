package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	appErrors "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories/mocks"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	serviceMocks "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderServiceTest(t *testing.T) (service.OrderService, *mocks.OrderRepository, *mocks.ProductRepository, *serviceMocks.NotificationService) {
	mockOrderRepo := mocks.NewOrderRepository(t)
	mockProductRepo := mocks.NewProductRepository(t)
	mockNotifier := serviceMocks.NewNotificationService(t)

	orderService, err := service.NewOrderService(mockOrderRepo, mockProductRepo, mockNotifier, &config.Pricing{
		ShippingFee: "5.99",
		TaxRate:     "0.08",
	})
	require.NoError(t, err)

	return orderService, mockOrderRepo, mockProductRepo, mockNotifier
}

func price(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	require.NoError(t, err)

	return d
}

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, mockProductRepo, mockNotifier := setupOrderServiceTest(t)
	ctx := context.Background()
	productID1 := uuid.New()
	productID2 := uuid.New()

	mockProduct1 := &models.Product{ID: productID1, Name: "Paracetamol 500mg", Price: price(t, "24.99"), Stock: 10}
	mockProduct2 := &models.Product{ID: productID2, Name: "Vitamin C 1000mg", Price: price(t, "11.99"), Stock: 5}

	// Once per cart line at pricing time, then once more per line when the
	// stock is decremented after persistence.
	mockProductRepo.On("GetProductByID", ctx, productID1).Return(mockProduct1, nil).Twice()
	mockProductRepo.On("GetProductByID", ctx, productID2).Return(mockProduct2, nil).Twice()

	mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		orderArg := args.Get(1).(*models.Order)
		assert.Equal(t, models.OrderStatusPending, orderArg.Status)
		assert.Len(t, orderArg.Items, 2)
		assert.True(t, orderArg.Subtotal.Equal(price(t, "61.97")), "subtotal %s", orderArg.Subtotal)
		assert.True(t, orderArg.ShippingFee.Equal(price(t, "5.99")), "shipping %s", orderArg.ShippingFee)
		assert.True(t, orderArg.Tax.Equal(price(t, "4.96")), "tax %s", orderArg.Tax)
		assert.True(t, orderArg.Total.Equal(price(t, "72.92")), "total %s", orderArg.Total)
	}).Once()

	mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool { return p.ID == productID1 && p.Stock == 8 })).Return(nil).Once()
	mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p *models.Product) bool { return p.ID == productID2 && p.Stock == 4 })).Return(nil).Once()

	mockNotifier.On("SendEmail", ctx, mock.AnythingOfType("*models.EmailNotificationRequest")).Return(nil).Once()

	req := &models.CreateOrderRequest{
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Items: []models.OrderItemRequest{
			{ProductID: productID1, Quantity: 2},
			{ProductID: productID2, Quantity: 1},
		},
		ShippingAddress: models.Address{
			Street: "12 Galle Road", City: "Colombo", PostalCode: "00300", Country: "LK",
		},
	}

	// Act
	order, err := orderService.CreateOrder(ctx, req)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Len(t, order.Items, 2)

	// The snapshot carries catalog names and prices, not client input.
	assert.Equal(t, "Paracetamol 500mg", order.Items[0].Name)
	assert.True(t, order.Items[0].UnitPrice.Equal(price(t, "24.99")))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(price(t, "72.92")))
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, mockProductRepo, _ := setupOrderServiceTest(t)
	ctx := context.Background()

	req := &models.CreateOrderRequest{
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Items:         []models.OrderItemRequest{},
	}

	// Act
	order, err := orderService.CreateOrder(ctx, req)

	// Assert
	assert.Nil(t, order)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

	// Nothing may be persisted for a rejected cart.
	mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	mockProductRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, mockProductRepo, _ := setupOrderServiceTest(t)
	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.On("GetProductByID", ctx, productID).Return(nil, errors.New("sql: no rows in result set")).Once()

	req := &models.CreateOrderRequest{
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Items:         []models.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	}

	// Act
	order, err := orderService.CreateOrder(ctx, req)

	// Assert
	assert.Nil(t, order)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

	mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, mockProductRepo, _ := setupOrderServiceTest(t)
	ctx := context.Background()
	productID := uuid.New()

	mockProduct := &models.Product{ID: productID, Name: "Ibuprofen 200mg", Price: price(t, "8.50"), Stock: 1}
	mockProductRepo.On("GetProductByID", ctx, productID).Return(mockProduct, nil).Once()

	req := &models.CreateOrderRequest{
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Items:         []models.OrderItemRequest{{ProductID: productID, Quantity: 3}},
	}

	// Act
	order, err := orderService.CreateOrder(ctx, req)

	// Assert
	assert.Nil(t, order)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Ibuprofen 200mg")

	mockOrderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_EmailFailureDoesNotFailCheckout(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, mockProductRepo, mockNotifier := setupOrderServiceTest(t)
	ctx := context.Background()
	productID := uuid.New()

	mockProduct := &models.Product{ID: productID, Name: "Cough Syrup", Price: price(t, "6.25"), Stock: 4}
	mockProductRepo.On("GetProductByID", ctx, productID).Return(mockProduct, nil).Twice()
	mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()
	mockNotifier.On("SendEmail", ctx, mock.AnythingOfType("*models.EmailNotificationRequest")).Return(errors.New("sendgrid: 503")).Once()

	req := &models.CreateOrderRequest{
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Items:         []models.OrderItemRequest{{ProductID: productID, Quantity: 1}},
	}

	// Act
	order, err := orderService.CreateOrder(ctx, req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, _, _ := setupOrderServiceTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(nil, errors.New("sql: no rows in result set")).Once()

	// Act
	order, err := orderService.GetOrderByID(ctx, orderID)

	// Assert
	assert.Nil(t, order)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}

func TestUpdateOrderStatus_SendsEmailOnChange(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, _, mockNotifier := setupOrderServiceTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	existing := &models.Order{
		ID:            orderID,
		OrderNumber:   "ORD-20250301-123456",
		CustomerName:  "Nimal Perera",
		CustomerEmail: "nimal@example.com",
		Status:        models.OrderStatusPending,
	}

	mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(existing, nil).Once()
	mockOrderRepo.On("UpdateStatus", ctx, orderID, models.OrderStatusShipped).Return(nil).Once()
	mockNotifier.On("SendEmail", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
		return req.Recipient == "nimal@example.com"
	})).Return(nil).Once()

	// Act
	order, err := orderService.UpdateStatus(ctx, orderID, models.OrderStatusShipped)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestUpdateOrderStatus_NoOpWhenUnchanged(t *testing.T) {
	// Arrange
	orderService, mockOrderRepo, _, mockNotifier := setupOrderServiceTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	existing := &models.Order{ID: orderID, CustomerEmail: "nimal@example.com", Status: models.OrderStatusShipped}
	mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(existing, nil).Once()

	// Act
	order, err := orderService.UpdateStatus(ctx, orderID, models.OrderStatusShipped)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	mockOrderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestNewOrderService_InvalidPricing(t *testing.T) {
	_, err := service.NewOrderService(nil, nil, nil, &config.Pricing{ShippingFee: "free", TaxRate: "0.08"})
	assert.Error(t, err)

	_, err = service.NewOrderService(nil, nil, nil, &config.Pricing{ShippingFee: "5.99", TaxRate: "eight percent"})
	assert.Error(t, err)
}
