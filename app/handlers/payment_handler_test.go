package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStripe struct {
	session    *services.CheckoutSession
	details    *services.CheckoutSessionDetails
	successURL string
	cancelURL  string
	err        error
}

func (f *fakeStripe) CreateCheckoutSession(items []services.CheckoutItem, customerEmail, successURL, cancelURL, currency string) (*services.CheckoutSession, error) {
	f.successURL = successURL
	f.cancelURL = cancelURL
	return f.session, f.err
}

func (f *fakeStripe) RetrieveSession(sessionID string) (*services.CheckoutSessionDetails, error) {
	return f.details, f.err
}

type fakeRazorpay struct {
	order *services.RazorpayOrder
	valid bool
	err   error
}

func (f *fakeRazorpay) CreateOrder(amountMinor int64, currency, receipt string) (*services.RazorpayOrder, error) {
	return f.order, f.err
}

func (f *fakeRazorpay) VerifySignature(orderID, paymentID, signature string) bool {
	return f.valid
}

func (f *fakeRazorpay) KeyID() string { return "rzp_test_key" }

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func paymentEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (helpers.Response, map[string]interface{}) {
	t.Helper()

	var resp helpers.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

func TestCreateCheckoutSessionRejectsEmptyCart(t *testing.T) {
	h := NewPaymentHandler(&fakeStripe{}, &fakeRazorpay{}, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.CreateCheckoutSession, map[string]interface{}{"items": []interface{}{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp, _ := paymentEnvelope(t, rec)
	assert.Equal(t, "No items in cart", resp.Message)
}

func TestCreateCheckoutSessionReturnsRedirect(t *testing.T) {
	stripe := &fakeStripe{session: &services.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1"}}
	h := NewPaymentHandler(stripe, &fakeRazorpay{}, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.CreateCheckoutSession, map[string]interface{}{
		"items": []map[string]interface{}{{"productId": "p1", "name": "Wrap Dress", "price": 50, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := paymentEnvelope(t, rec)
	assert.Equal(t, "cs_1", data["sessionId"])
	assert.Equal(t, "https://checkout.stripe.test/cs_1", data["url"])
	assert.Equal(t, "https://shop.test/payment-success?session_id={CHECKOUT_SESSION_ID}", stripe.successURL)
	assert.Equal(t, "https://shop.test/checkout", stripe.cancelURL)
}

func TestVerifyPaymentRequiresSessionID(t *testing.T) {
	h := NewPaymentHandler(&fakeStripe{}, &fakeRazorpay{}, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.VerifyPayment, map[string]string{"sessionId": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp, _ := paymentEnvelope(t, rec)
	assert.Equal(t, "Session ID is required", resp.Message)
}

func TestVerifyPaymentReportsProcessorFailure(t *testing.T) {
	h := NewPaymentHandler(&fakeStripe{err: errors.New("stripe down")}, &fakeRazorpay{}, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.VerifyPayment, map[string]string{"sessionId": "cs_1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateRazorpayOrderReturnsKeyAndAmount(t *testing.T) {
	razorpay := &fakeRazorpay{order: &services.RazorpayOrder{ID: "order_1", Amount: 11800, Currency: "INR", Status: "created"}}
	h := NewPaymentHandler(&fakeStripe{}, razorpay, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.CreateRazorpayOrder, map[string]interface{}{
		"items": []map[string]interface{}{{"productId": "p1", "name": "Wrap Dress", "price": 50, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := paymentEnvelope(t, rec)
	assert.Equal(t, "order_1", data["orderId"])
	assert.EqualValues(t, 11800, data["amount"])
	assert.Equal(t, "INR", data["currency"])
	assert.Equal(t, "rzp_test_key", data["keyId"])
}

func TestVerifyRazorpayPayment(t *testing.T) {
	h := NewPaymentHandler(&fakeStripe{}, &fakeRazorpay{valid: true}, helpers.NewRenderer(), "https://shop.test", "INR")

	rec := postJSON(t, h.VerifyRazorpayPayment, map[string]string{
		"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp, _ := paymentEnvelope(t, rec)
	assert.Equal(t, "Missing payment verification parameters", resp.Message)

	rec = postJSON(t, h.VerifyRazorpayPayment, map[string]string{
		"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1", "razorpay_signature": "sig",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	_, data := paymentEnvelope(t, rec)
	assert.Equal(t, true, data["verified"])
	assert.Equal(t, "order_1", data["orderId"])

	rejecting := NewPaymentHandler(&fakeStripe{}, &fakeRazorpay{valid: false}, helpers.NewRenderer(), "https://shop.test", "INR")
	rec = postJSON(t, rejecting.VerifyRazorpayPayment, map[string]string{
		"razorpay_order_id": "order_1", "razorpay_payment_id": "pay_1", "razorpay_signature": "bad",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp, _ = paymentEnvelope(t, rec)
	assert.Equal(t, "Payment signature verification failed", resp.Message)
}
