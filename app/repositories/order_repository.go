package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/chicstyle/go-boutique/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	// CreateOrGetBySession inserts the order and, when the unique index on the
	// payment-session id reports a collision, returns the already-stored order
	// instead. The bool reports whether a new row was written.
	CreateOrGetBySession(ctx context.Context, order *models.Order) (*models.Order, bool, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserAndID(ctx context.Context, userID, id string) (*models.Order, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetPaginated(ctx context.Context, orderStatus string, limit, offset int) ([]models.Order, int64, error)
	Update(ctx context.Context, order *models.Order) error
	Count(ctx context.Context) (int64, error)
	CountByOrderStatus(ctx context.Context, status string) (int64, error)
	CountByPaymentMethod(ctx context.Context, method string) (int64, error)
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) CreateOrGetBySession(ctx context.Context, order *models.Order) (*models.Order, bool, error) {
	err := r.db.WithContext(ctx).Create(order).Error
	if err == nil {
		return order, true, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) && order.PaymentSessionID != nil {
		existing, findErr := r.FindBySessionID(ctx, *order.PaymentSessionID)
		if findErr != nil {
			return nil, false, findErr
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	return nil, false, fmt.Errorf("failed to create order: %w", err)
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetByUserAndID(ctx context.Context, userID, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "payment_session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetPaginated(ctx context.Context, orderStatus string, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Order{})
	if orderStatus != "" && orderStatus != "all" {
		query = query.Where("order_status = ?", orderStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error

	return orders, total, err
}

func (r *gormOrderRepository) Update(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *gormOrderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error
	return total, err
}

func (r *gormOrderRepository) CountByOrderStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("order_status = ?", status).Count(&total).Error
	return total, err
}

func (r *gormOrderRepository) CountByPaymentMethod(ctx context.Context, method string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("payment_method = ?", method).Count(&total).Error
	return total, err
}

func (r *gormOrderRepository) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("SUM(total)").
		Where("payment_status = ?", models.PaymentStatusPaid).
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}
