package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/chicstyle/go-boutique/app/utils/calc"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type checkoutRequest struct {
	Items         []services.CheckoutItem `json:"items"`
	CustomerEmail string                  `json:"customerEmail"`
}

type verifyPaymentRequest struct {
	SessionID string `json:"sessionId"`
}

type razorpayVerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// PaymentHandler fronts the external processors. It never touches orders:
// order creation happens afterwards through the order endpoint, which only
// sees the opaque session/order id produced here.
type PaymentHandler struct {
	stripe   services.StripeClient
	razorpay services.RazorpayClient
	render   *render.Render
	appURL   string
	currency string
}

func NewPaymentHandler(stripe services.StripeClient, razorpay services.RazorpayClient, render *render.Render, appURL, currency string) *PaymentHandler {
	return &PaymentHandler{
		stripe:   stripe,
		razorpay: razorpay,
		render:   render,
		appURL:   appURL,
		currency: currency,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to create checkout session", err)
		return
	}

	if len(req.Items) == 0 {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "No items in cart")
		return
	}

	successURL := h.appURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := h.appURL + "/checkout"

	session, err := h.stripe.CreateCheckoutSession(req.Items, req.CustomerEmail, successURL, cancelURL, h.currency)
	if err != nil {
		log.Printf("PaymentHandler.CreateCheckoutSession: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to create checkout session", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, map[string]string{
		"url":       session.URL,
		"sessionId": session.ID,
	})
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to verify payment", err)
		return
	}

	if req.SessionID == "" {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Session ID is required")
		return
	}

	details, err := h.stripe.RetrieveSession(req.SessionID)
	if err != nil {
		log.Printf("PaymentHandler.VerifyPayment: session %s: %v", req.SessionID, err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to verify payment", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, details)
}

func (h *PaymentHandler) CreateRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to create payment order", err)
		return
	}

	if len(req.Items) == 0 {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "No items in cart")
		return
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	shippingCost := calc.CalculateShipping(subtotal)
	tax := calc.CalculateTax(subtotal)
	total := calc.CalculateGrandTotal(subtotal, shippingCost, tax)

	receipt := fmt.Sprintf("order_%d", time.Now().UnixMilli())

	order, err := h.razorpay.CreateOrder(calc.ToMinorUnits(total), h.currency, receipt)
	if err != nil {
		log.Printf("PaymentHandler.CreateRazorpayOrder: %v", err)
		helpers.RespondErrorDetail(h.render, w, http.StatusInternalServerError, "Failed to create payment order", err)
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, map[string]interface{}{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"keyId":    h.razorpay.KeyID(),
	})
}

func (h *PaymentHandler) VerifyRazorpayPayment(w http.ResponseWriter, r *http.Request) {
	var req razorpayVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.RespondErrorDetail(h.render, w, http.StatusBadRequest, "Failed to verify payment", err)
		return
	}

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Missing payment verification parameters")
		return
	}

	if !h.razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Printf("PaymentHandler.VerifyRazorpayPayment: signature mismatch for order %s", req.OrderID)
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Payment signature verification failed")
		return
	}

	helpers.RespondData(h.render, w, http.StatusOK, map[string]interface{}{
		"verified":  true,
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}
