package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

const defaultAPIURL = "https://api.razorpay.com/v1"

// GatewayOrder is the gateway's view of a created order.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// GatewayClient creates orders with the external payment gateway.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error)
}

// Client talks to the Razorpay REST API with basic auth.
type Client struct {
	keyID      string
	keySecret  string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given key pair.
func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientFromEnv builds a client from RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
func NewClientFromEnv() *Client {
	return NewClient(
		env.GetEnv("RAZORPAY_KEY_ID", ""),
		env.GetEnv("RAZORPAY_KEY_SECRET", ""),
	)
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt,omitempty"`
	PaymentCapture int    `json:"payment_capture"`
}

// CreateOrder registers a payment intent with the gateway. Transport and
// non-2xx failures come back wrapped in ErrGatewayUnavailable; there is
// no internal retry.
func (c *Client) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amountMinorUnits,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.keyID + ":" + c.keySecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrGatewayUnavailable, resp.Status)
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrGatewayUnavailable, err)
	}
	return &order, nil
}
