package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func gatewayTestClient(url string) *Client {
	return &Client{
		keyID:      "rzp_test_key",
		keySecret:  "rzp_test_secret",
		apiURL:     url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestClientCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "rzp_test_secret" {
			t.Errorf("unexpected basic auth %q/%q", user, pass)
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Amount != 29900 || req.Currency != "INR" || req.PaymentCapture != 1 {
			t.Errorf("unexpected order request %+v", req)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_srv_1",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	order, err := gatewayTestClient(srv.URL).CreateOrder(context.Background(), 29900, "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "order_srv_1" || order.Amount != 29900 {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestClientCreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"BAD_REQUEST_ERROR"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := gatewayTestClient(srv.URL).CreateOrder(context.Background(), 29900, "INR", "rcpt_1")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestClientCreateOrder_Unreachable(t *testing.T) {
	_, err := gatewayTestClient("http://127.0.0.1:1").CreateOrder(context.Background(), 29900, "INR", "rcpt_1")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}
