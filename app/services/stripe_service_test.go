package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeCreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.Form.Get("mode"))
		assert.Equal(t, "inr", r.Form.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "Wrap Dress (Size: M)", r.Form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "5000", r.Form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", r.Form.Get("line_items[0][quantity]"))
		// subtotal 100 is at the free-shipping threshold, so shipping is charged
		assert.Equal(t, "1000", r.Form.Get("shipping_options[0][shipping_rate_data][fixed_amount][amount]"))
		assert.Equal(t, "Standard Shipping", r.Form.Get("shipping_options[0][shipping_rate_data][display_name]"))
		assert.Equal(t, "buyer@example.com", r.Form.Get("customer_email"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.test/cs_test_1"}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_123")
	svc.baseURL = server.URL

	items := []CheckoutItem{
		{ProductID: "p1", Name: "Wrap Dress", Price: decimal.NewFromInt(50), Quantity: 2, Size: "M"},
	}
	session, err := svc.CreateCheckoutSession(items, "buyer@example.com", "https://shop.test/success", "https://shop.test/cancel", "INR")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_1", session.URL)
}

func TestStripeCreateCheckoutSessionFreeShipping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "0", r.Form.Get("shipping_options[0][shipping_rate_data][fixed_amount][amount]"))
		assert.Equal(t, "Free Shipping", r.Form.Get("shipping_options[0][shipping_rate_data][display_name]"))

		w.Write([]byte(`{"id":"cs_test_2","url":"https://checkout.stripe.test/cs_test_2"}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_123")
	svc.baseURL = server.URL

	items := []CheckoutItem{
		{ProductID: "p1", Name: "Trench Coat", Price: decimal.NewFromFloat(150.50), Quantity: 1, Size: "L"},
	}
	_, err := svc.CreateCheckoutSession(items, "", "https://shop.test/success", "https://shop.test/cancel", "INR")
	require.NoError(t, err)
}

func TestStripeCreateCheckoutSessionRejectsMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"","url":""}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_123")
	svc.baseURL = server.URL

	_, err := svc.CreateCheckoutSession([]CheckoutItem{{Name: "X", Price: decimal.NewFromInt(10), Quantity: 1}}, "", "s", "c", "INR")
	assert.Error(t, err)
}

func TestStripeRetrieveSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_test_1",
			"payment_status": "paid",
			"amount_total": 11800,
			"currency": "inr",
			"customer_details": {"email": "buyer@example.com", "name": "A B"}
		}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_123")
	svc.baseURL = server.URL

	details, err := svc.RetrieveSession("cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", details.ID)
	assert.Equal(t, "paid", details.PaymentStatus)
	assert.True(t, details.AmountTotal.Equal(decimal.NewFromInt(118)), "amount = %s", details.AmountTotal)
	assert.Equal(t, "INR", details.Currency)
	assert.Equal(t, "buyer@example.com", details.CustomerEmail)
	assert.Equal(t, "A B", details.CustomerName)
}
