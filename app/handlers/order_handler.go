package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/repositories"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderSvc  *services.OrderService
	orderRepo repositories.OrderRepository
	render    *render.Render
}

func NewOrderHandler(orderSvc *services.OrderService, orderRepo repositories.OrderRepository, render *render.Render) *OrderHandler {
	return &OrderHandler{
		orderSvc:  orderSvc,
		orderRepo: orderRepo,
		render:    render,
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)

	var input services.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to create order", err)
		return
	}

	order, created, err := h.orderSvc.CreateOrder(ctx, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyItems):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Order must contain at least one item")
		case errors.Is(err, services.ErrMissingShippingAddress):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Shipping address is required")
		case errors.Is(err, services.ErrInvalidPaymentMethod):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Valid payment method is required")
		default:
			log.Printf("OrderHandler.CreateOrder: user %s: %v", userID, err)
			helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}

	if !created {
		helpers.RespondMessage(h.render, w, http.StatusOK, "Order already exists", order)
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, "Order placed successfully", order)
}

func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)

	orders, err := h.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("OrderHandler.GetUserOrders: user %s: %v", userID, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByUserAndID(ctx, userID, id)
	if err != nil {
		log.Printf("OrderHandler.GetOrderByID: order %s: %v", id, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to fetch order", err)
		return
	}
	if order == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Order not found")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, order)
}
