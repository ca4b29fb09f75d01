package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chicstyle/go-boutique/app/utils/calc"
	"github.com/shopspring/decimal"
)

const stripeAPIBaseURL = "https://api.stripe.com"

// CheckoutItem is one cart line as the client submits it to the payment
// bridge endpoints.
type CheckoutItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CheckoutSessionDetails struct {
	ID            string          `json:"orderId"`
	PaymentStatus string          `json:"paymentStatus"`
	AmountTotal   decimal.Decimal `json:"amountTotal"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerName  string          `json:"customerName"`
}

type StripeClient interface {
	CreateCheckoutSession(items []CheckoutItem, customerEmail, successURL, cancelURL, currency string) (*CheckoutSession, error)
	RetrieveSession(sessionID string) (*CheckoutSessionDetails, error)
}

type StripeService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewStripeService(apiKey string) *StripeService {
	return &StripeService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: stripeAPIBaseURL,
	}
}

func (s *StripeService) CreateCheckoutSession(items []CheckoutItem, customerEmail, successURL, cancelURL, currency string) (*CheckoutSession, error) {

	currency = strings.ToLower(currency)

	formData := url.Values{}
	formData.Set("mode", "payment")
	formData.Set("success_url", successURL)
	formData.Set("cancel_url", cancelURL)
	formData.Set("billing_address_collection", "auto")
	if customerEmail != "" {
		formData.Set("customer_email", customerEmail)
	}

	subtotal := decimal.Zero
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		formData.Set(prefix+"[price_data][currency]", currency)
		formData.Set(prefix+"[price_data][product_data][name]", fmt.Sprintf("%s (Size: %s)", item.Name, item.Size))
		if item.Image != "" {
			formData.Set(prefix+"[price_data][product_data][images][0]", item.Image)
		}
		formData.Set(prefix+"[price_data][product_data][metadata][product_id]", item.ProductID)
		formData.Set(prefix+"[price_data][product_data][metadata][size]", item.Size)
		formData.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(calc.ToMinorUnits(item.Price), 10))
		formData.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))

		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shippingCost := calc.CalculateShipping(subtotal)
	displayName := "Standard Shipping"
	if shippingCost.IsZero() {
		displayName = "Free Shipping"
	}
	formData.Set("shipping_options[0][shipping_rate_data][type]", "fixed_amount")
	formData.Set("shipping_options[0][shipping_rate_data][fixed_amount][amount]", strconv.FormatInt(calc.ToMinorUnits(shippingCost), 10))
	formData.Set("shipping_options[0][shipping_rate_data][fixed_amount][currency]", currency)
	formData.Set("shipping_options[0][shipping_rate_data][display_name]", displayName)

	req, err := http.NewRequest("POST", s.baseURL+"/v1/checkout/sessions", strings.NewReader(formData.Encode()))
	if err != nil {
		log.Printf("StripeService: Error creating checkout session request: %v", err)
		return nil, fmt.Errorf("failed to create checkout session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("StripeService: Error performing checkout session request: %v", err)
		return nil, fmt.Errorf("failed to perform request to Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("StripeService: Error reading checkout session response: %v", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("StripeService: checkout session API returned non-OK status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("Stripe API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		log.Printf("StripeService: Error unmarshalling checkout session response: %v, Raw Body: %s", err, string(body))
		return nil, fmt.Errorf("failed to parse checkout session response: %w", err)
	}

	if session.ID == "" || session.URL == "" {
		return nil, fmt.Errorf("stripe returned an invalid checkout session (missing id or url)")
	}

	log.Printf("StripeService: Checkout session %s created.", session.ID)
	return &session, nil
}

func (s *StripeService) RetrieveSession(sessionID string) (*CheckoutSessionDetails, error) {

	req, err := http.NewRequest("GET", s.baseURL+"/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		log.Printf("StripeService: Error creating session retrieve request: %v", err)
		return nil, fmt.Errorf("failed to create session retrieve request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("StripeService: Error performing session retrieve request: %v", err)
		return nil, fmt.Errorf("failed to perform request to Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("StripeService: Error reading session retrieve response: %v", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("StripeService: session retrieve API returned non-OK status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("Stripe API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw struct {
		ID              string `json:"id"`
		PaymentStatus   string `json:"payment_status"`
		AmountTotal     int64  `json:"amount_total"`
		Currency        string `json:"currency"`
		CustomerDetails struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"customer_details"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("StripeService: Error unmarshalling session retrieve response: %v, Raw Body: %s", err, string(body))
		return nil, fmt.Errorf("failed to parse session retrieve response: %w", err)
	}

	log.Printf("StripeService: Session %s retrieved with payment status %s.", raw.ID, raw.PaymentStatus)

	return &CheckoutSessionDetails{
		ID:            raw.ID,
		PaymentStatus: raw.PaymentStatus,
		AmountTotal:   calc.FromMinorUnits(raw.AmountTotal),
		Currency:      strings.ToUpper(raw.Currency),
		CustomerEmail: raw.CustomerDetails.Email,
		CustomerName:  raw.CustomerDetails.Name,
	}, nil
}
