package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayVerifySignature(t *testing.T) {
	svc := NewRazorpayService("key_id", "key_secret")

	signature := signPayment("key_secret", "order_1", "pay_1")
	assert.True(t, svc.VerifySignature("order_1", "pay_1", signature))

	assert.False(t, svc.VerifySignature("order_1", "pay_1", signature[:len(signature)-1]+"0"))
	assert.False(t, svc.VerifySignature("order_2", "pay_1", signature))
	assert.False(t, svc.VerifySignature("order_1", "pay_1", ""))
}

func TestRazorpayCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_test_1","amount":10800,"currency":"INR","receipt":"order_42","status":"created"}`))
	}))
	defer server.Close()

	svc := NewRazorpayService("key_id", "key_secret")
	svc.baseURL = server.URL

	order, err := svc.CreateOrder(10800, "INR", "order_42")
	require.NoError(t, err)
	assert.Equal(t, "order_test_1", order.ID)
	assert.EqualValues(t, 10800, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestRazorpayCreateOrderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"bad key"}}`))
	}))
	defer server.Close()

	svc := NewRazorpayService("key_id", "wrong")
	svc.baseURL = server.URL

	_, err := svc.CreateOrder(10800, "INR", "order_42")
	assert.Error(t, err)
}
