package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const razorpayAPIBaseURL = "https://api.razorpay.com"

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type RazorpayClient interface {
	CreateOrder(amountMinor int64, currency, receipt string) (*RazorpayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type RazorpayService struct {
	client    *http.Client
	keyID     string
	keySecret string
	baseURL   string
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayAPIBaseURL,
	}
}

// KeyID is the public half the browser checkout widget needs.
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

func (s *RazorpayService) CreateOrder(amountMinor int64, currency, receipt string) (*RazorpayOrder, error) {

	payload, err := json.Marshal(map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/v1/orders", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("RazorpayService: Error creating order request: %v", err)
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	req.SetBasicAuth(s.keyID, s.keySecret)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("RazorpayService: Creating order. Amount=%d %s, Receipt=%s", amountMinor, currency, receipt)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("RazorpayService: Error performing order request: %v", err)
		return nil, fmt.Errorf("failed to perform request to Razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("RazorpayService: Error reading order response: %v", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("RazorpayService: order API returned non-OK status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("Razorpay API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		log.Printf("RazorpayService: Error unmarshalling order response: %v, Raw Body: %s", err, string(body))
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned an invalid order (missing id)")
	}

	log.Printf("RazorpayService: Order %s created.", order.ID)
	return &order, nil
}

// VerifySignature checks the callback signature Razorpay computes over
// "<order_id>|<payment_id>" with the key secret.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
