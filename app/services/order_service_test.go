package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func newOrderService(t *testing.T) (*OrderService, repositories.OrderRepository) {
	t.Helper()

	repo := repositories.NewOrderRepository(newTestDB(t))
	return NewOrderService(repo, "INR"), repo
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: "p1", Name: "Wrap Dress", Price: decimal.NewFromInt(50), Quantity: 2, Size: "M"},
		},
		ShippingAddress: models.ShippingAddress{
			FullName: "A B",
			Address:  "1 Main St",
			City:     "Mumbai",
			Country:  "India",
		},
		PaymentMethod: models.PaymentMethodCOD,
		Subtotal:      decimal.NewFromInt(100),
		ShippingCost:  decimal.Zero,
		Tax:           decimal.NewFromInt(8),
		Total:         decimal.NewFromInt(108),
	}
}

func orderCount(t *testing.T, repo repositories.OrderRepository) int64 {
	t.Helper()
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	return count
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, repo := newOrderService(t)

	input := validInput()
	input.Items = nil

	_, _, err := svc.CreateOrder(context.Background(), "u1", input)
	assert.ErrorIs(t, err, ErrEmptyItems)
	assert.EqualValues(t, 0, orderCount(t, repo))
}

func TestCreateOrderRejectsMissingShippingAddress(t *testing.T) {
	svc, repo := newOrderService(t)

	missingName := validInput()
	missingName.ShippingAddress.FullName = ""
	_, _, err := svc.CreateOrder(context.Background(), "u1", missingName)
	assert.ErrorIs(t, err, ErrMissingShippingAddress)

	missingAddress := validInput()
	missingAddress.ShippingAddress.Address = ""
	_, _, err = svc.CreateOrder(context.Background(), "u1", missingAddress)
	assert.ErrorIs(t, err, ErrMissingShippingAddress)

	assert.EqualValues(t, 0, orderCount(t, repo))
}

func TestCreateOrderRejectsUnknownPaymentMethod(t *testing.T) {
	svc, repo := newOrderService(t)

	input := validInput()
	input.PaymentMethod = "paypal"

	_, _, err := svc.CreateOrder(context.Background(), "u1", input)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.EqualValues(t, 0, orderCount(t, repo))
}

func TestCreateOrderValidationShortCircuits(t *testing.T) {
	svc, _ := newOrderService(t)

	// Everything is wrong at once; the items check must win.
	input := validInput()
	input.Items = nil
	input.ShippingAddress = models.ShippingAddress{}
	input.PaymentMethod = "wire"

	_, _, err := svc.CreateOrder(context.Background(), "u1", input)
	assert.ErrorIs(t, err, ErrEmptyItems)
}

func TestCreateOrderCOD(t *testing.T) {
	svc, repo := newOrderService(t)

	order, created, err := svc.CreateOrder(context.Background(), "u1", validInput())
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, order.OrderStatus)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "u1", order.UserID)
	assert.Nil(t, order.PaymentSessionID)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(108)), "total = %s", order.Total)
	assert.Len(t, order.Items, 1)
	assert.EqualValues(t, 1, orderCount(t, repo))
}

func TestCreateOrderOnlineMethodsAreMarkedPaid(t *testing.T) {
	for _, method := range []string{models.PaymentMethodStripe, models.PaymentMethodRazorpay} {
		t.Run(method, func(t *testing.T) {
			svc, _ := newOrderService(t)

			input := validInput()
			input.PaymentMethod = method
			input.OrderID = "sess_" + method

			order, created, err := svc.CreateOrder(context.Background(), "u1", input)
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
			assert.Equal(t, models.OrderStatusConfirmed, order.OrderStatus)
			require.NotNil(t, order.PaymentSessionID)
			assert.Equal(t, input.OrderID, *order.PaymentSessionID)
		})
	}
}

func TestCreateOrderReplayReturnsExistingOrder(t *testing.T) {
	svc, repo := newOrderService(t)

	input := validInput()
	input.PaymentMethod = models.PaymentMethodStripe
	input.OrderID = "sess_123"

	first, created, err := svc.CreateOrder(context.Background(), "u1", input)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.CreateOrder(context.Background(), "u1", input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, orderCount(t, repo))
}

func TestCreateOrderCODIgnoresSessionDedup(t *testing.T) {
	svc, repo := newOrderService(t)

	input := validInput()
	input.OrderID = "receipt_1"

	first, _, err := svc.CreateOrder(context.Background(), "u1", input)
	require.NoError(t, err)

	// A second COD submission is a new order even with the same reference:
	// the replay guard only applies to online payment methods. The session
	// column must stay unique though, so the reference is kept on the first.
	input.OrderID = ""
	second, created, err := svc.CreateOrder(context.Background(), "u1", input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, second.ID)
	assert.EqualValues(t, 2, orderCount(t, repo))
}
