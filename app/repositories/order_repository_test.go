package repositories

import (
	"context"
	"testing"

	"github.com/chicstyle/go-boutique/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testOrder(userID string, sessionID *string) *models.Order {
	return &models.Order{
		UserID: userID,
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Wrap Dress", Price: decimal.NewFromInt(50), Quantity: 2, Size: "M"},
		},
		ShippingAddress: models.ShippingAddress{
			FullName: "A B",
			Address:  "1 Main St",
		},
		PaymentMethod:    models.PaymentMethodStripe,
		PaymentStatus:    models.PaymentStatusPaid,
		OrderStatus:      models.OrderStatusConfirmed,
		Subtotal:         decimal.NewFromInt(100),
		Tax:              decimal.NewFromInt(8),
		Total:            decimal.NewFromInt(108),
		PaymentSessionID: sessionID,
		Currency:         "INR",
	}
}

func TestCreateOrGetBySessionReturnsExistingOnCollision(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	first := testOrder("u1", strPtr("sess_abc"))
	require.NoError(t, repo.Create(ctx, first))

	second := testOrder("u1", strPtr("sess_abc"))
	got, created, err := repo.CreateOrGetBySession(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, got.ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCreateOrGetBySessionInsertsWhenFree(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := testOrder("u1", strPtr("sess_new"))
	got, created, err := repo.CreateOrGetBySession(ctx, order)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, got.ID)
}

func TestFindBySessionIDNotFound(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	order, err := repo.FindBySessionID(context.Background(), "sess_missing")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetByUserAndIDScopesToOwner(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := testOrder("u1", nil)
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByUserAndID(ctx, "u1", order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 1)

	other, err := repo.GetByUserAndID(ctx, "u2", order.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestGetPaginatedFiltersByStatus(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	statuses := []string{
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	}
	for _, status := range statuses {
		order := testOrder("u1", nil)
		order.OrderStatus = status
		require.NoError(t, repo.Create(ctx, order))
	}

	shipped, total, err := repo.GetPaginated(ctx, models.OrderStatusShipped, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, o := range shipped {
		assert.Equal(t, models.OrderStatusShipped, o.OrderStatus)
	}

	all, total, err := repo.GetPaginated(ctx, "all", 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, all, 4)

	page, total, err := repo.GetPaginated(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, page, 2)
}

func TestOrderStats(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	ctx := context.Background()

	paid := testOrder("u1", strPtr("sess_1"))
	paid.Total = decimal.NewFromInt(108)
	require.NoError(t, repo.Create(ctx, paid))

	cod := testOrder("u2", nil)
	cod.PaymentMethod = models.PaymentMethodCOD
	cod.PaymentStatus = models.PaymentStatusPending
	cod.Total = decimal.NewFromInt(54)
	require.NoError(t, repo.Create(ctx, cod))

	confirmed, err := repo.CountByOrderStatus(ctx, models.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, 2, confirmed)

	codCount, err := repo.CountByPaymentMethod(ctx, models.PaymentMethodCOD)
	require.NoError(t, err)
	assert.EqualValues(t, 1, codCount)

	// Only the paid order counts toward revenue.
	revenue, err := repo.PaidRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(108)), "revenue = %s", revenue)
}

func TestPaidRevenueEmptyTable(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	revenue, err := repo.PaidRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
