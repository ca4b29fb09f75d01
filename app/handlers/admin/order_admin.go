package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const defaultOrderPageSize = 20

// UpdateOrderStatusRequest carries the two independently patchable status
// fields. There is no transition graph: any present value from the enum
// replaces the stored one, in either direction.
type UpdateOrderStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

type OrderAdminHandler struct {
	orderRepo repositories.OrderRepository
	render    *render.Render
}

func NewOrderAdminHandler(orderRepo repositories.OrderRepository, render *render.Render) *OrderAdminHandler {
	return &OrderAdminHandler{
		orderRepo: orderRepo,
		render:    render,
	}
}

func (h *OrderAdminHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, limit := helpers.ParsePagination(r, defaultOrderPageSize)

	orders, total, err := h.orderRepo.GetPaginated(r.Context(), status, limit, (page-1)*limit)
	if err != nil {
		log.Printf("OrderAdminHandler.GetAllOrders: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	helpers.RespondWithPagination(h.render, w, helpers.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: helpers.TotalPages(total, limit),
	}, orders)
}

func (h *OrderAdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to update order", err)
		return
	}

	if req.OrderStatus != "" && !models.ValidOrderStatus(req.OrderStatus) {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid order status")
		return
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid payment status")
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("OrderAdminHandler.UpdateOrderStatus: order %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to update order", err)
		return
	}
	if order == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Order not found")
		return
	}

	if req.OrderStatus != "" {
		order.OrderStatus = req.OrderStatus
	}
	if req.PaymentStatus != "" {
		order.PaymentStatus = req.PaymentStatus
	}

	if err := h.orderRepo.Update(r.Context(), order); err != nil {
		log.Printf("OrderAdminHandler.UpdateOrderStatus: order %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to update order", err)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderAdminHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalOrders, err := h.orderRepo.Count(ctx)
	if err != nil {
		log.Printf("OrderAdminHandler.GetOrderStats: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order statistics", err)
		return
	}

	statusCounts := map[string]int64{}
	for _, status := range []string{models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered} {
		count, err := h.orderRepo.CountByOrderStatus(ctx, status)
		if err != nil {
			log.Printf("OrderAdminHandler.GetOrderStats: status %s: %v", status, err)
			helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order statistics", err)
			return
		}
		statusCounts[status] = count
	}

	codOrders, err := h.orderRepo.CountByPaymentMethod(ctx, models.PaymentMethodCOD)
	if err != nil {
		log.Printf("OrderAdminHandler.GetOrderStats: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order statistics", err)
		return
	}
	stripeOrders, err := h.orderRepo.CountByPaymentMethod(ctx, models.PaymentMethodStripe)
	if err != nil {
		log.Printf("OrderAdminHandler.GetOrderStats: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order statistics", err)
		return
	}

	totalRevenue, err := h.orderRepo.PaidRevenue(ctx)
	if err != nil {
		log.Printf("OrderAdminHandler.GetOrderStats: revenue: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order statistics", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, map[string]interface{}{
		"totalOrders":      totalOrders,
		"pendingOrders":    statusCounts[models.OrderStatusPending],
		"processingOrders": statusCounts[models.OrderStatusProcessing],
		"shippedOrders":    statusCounts[models.OrderStatusShipped],
		"deliveredOrders":  statusCounts[models.OrderStatusDelivered],
		"codOrders":        codOrders,
		"stripeOrders":     stripeOrders,
		"totalRevenue":     totalRevenue,
	})
}
