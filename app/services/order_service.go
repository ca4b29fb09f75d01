package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItems             = errors.New("order must contain at least one item")
	ErrMissingShippingAddress = errors.New("shipping address is required")
	ErrInvalidPaymentMethod   = errors.New("valid payment method is required")
)

type OrderItemInput struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Size      string          `json:"size"`
	Image     string          `json:"image"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput       `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	ShippingCost    decimal.Decimal        `json:"shippingCost"`
	Tax             decimal.Decimal        `json:"tax"`
	Total           decimal.Decimal        `json:"total"`
	// Stripe checkout session id or Razorpay order id, when the payment ran
	// through an online processor before this call.
	OrderID string `json:"orderId"`
}

type OrderService struct {
	orderRepo repositories.OrderRepository
	currency  string
}

func NewOrderService(orderRepo repositories.OrderRepository, currency string) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		currency:  currency,
	}
}

// CreateOrder validates and persists a checkout submission. The bool reports
// whether a new order was written; false means an existing order for the same
// payment session was returned instead.
//
// Payment is never verified here. Online methods reach this call only after
// the payment bridge confirmed the charge, so their status is recorded as
// paid; the session id is used purely for deduplication.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*models.Order, bool, error) {

	if len(input.Items) == 0 {
		return nil, false, ErrEmptyItems
	}

	if input.ShippingAddress.FullName == "" || input.ShippingAddress.Address == "" {
		return nil, false, ErrMissingShippingAddress
	}

	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, false, ErrInvalidPaymentMethod
	}

	if input.OrderID != "" && input.PaymentMethod != models.PaymentMethodCOD {
		existing, err := s.orderRepo.FindBySessionID(ctx, input.OrderID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to look up order by session id: %w", err)
		}
		if existing != nil {
			log.Printf("OrderService: duplicate submission for session %s, returning order %s", input.OrderID, existing.ID)
			return existing, false, nil
		}
	}

	paymentStatus := models.PaymentStatusPaid
	if input.PaymentMethod == models.PaymentMethodCOD {
		paymentStatus = models.PaymentStatusPending
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Image:     item.Image,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		OrderStatus:     models.OrderStatusConfirmed,
		Subtotal:        input.Subtotal,
		ShippingCost:    input.ShippingCost,
		Tax:             input.Tax,
		Total:           input.Total,
		Currency:        s.currency,
	}
	if input.OrderID != "" {
		sessionID := input.OrderID
		order.PaymentSessionID = &sessionID
	}

	// The unique index on payment_session_id backs the insert, so two
	// concurrent submissions for one session cannot both create a row; the
	// loser gets the winner's order back.
	if order.PaymentSessionID != nil && input.PaymentMethod != models.PaymentMethodCOD {
		persisted, created, err := s.orderRepo.CreateOrGetBySession(ctx, order)
		if err != nil {
			return nil, false, err
		}
		if !created {
			log.Printf("OrderService: concurrent duplicate for session %s, returning order %s", input.OrderID, persisted.ID)
		}
		return persisted, created, nil
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, false, fmt.Errorf("failed to create order: %w", err)
	}
	return order, true, nil
}
