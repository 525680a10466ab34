package payment

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
)

type fakeRepository struct {
	orders       map[string]*models.PaymentOrder
	orderIDs     []string // creation order, oldest first
	premiumUsers map[string]bool
	grantCalls   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		orders:       make(map[string]*models.PaymentOrder),
		premiumUsers: make(map[string]bool),
	}
}

func (f *fakeRepository) CreateOrder(order *models.PaymentOrder) error {
	f.orders[order.OrderID] = order
	f.orderIDs = append(f.orderIDs, order.OrderID)
	return nil
}

func (f *fakeRepository) GetOrder(orderID string) (*models.PaymentOrder, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *order
	return &copy, nil
}

func (f *fakeRepository) ListOrdersByUser(userID string) ([]models.PaymentOrder, error) {
	var orders []models.PaymentOrder
	for i := len(f.orderIDs) - 1; i >= 0; i-- {
		if order := f.orders[f.orderIDs[i]]; order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeRepository) VerifyAndGrant(orderID, userID, paymentID string) (bool, error) {
	order, ok := f.orders[orderID]
	if !ok || order.UserID != userID || order.Status != models.OrderStatusCreated {
		return false, nil
	}
	order.Status = models.OrderStatusVerified
	order.PaymentID = paymentID
	f.premiumUsers[userID] = true
	f.grantCalls++
	return true, nil
}

type fakeGateway struct {
	nextID string
	err    error
	calls  int
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &GatewayOrder{
		ID:       f.nextID,
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

const testSecret = "verify-secret"

func newTestService(repo Repository, gw GatewayClient) *Service {
	return NewService(repo, gw, Tiers{DefaultTierMinorUnits}, testSecret)
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeRepository()
	gw := &fakeGateway{nextID: "order_abc123"}
	svc := newTestService(repo, gw)

	order, err := svc.CreateOrder(context.Background(), "user-1", DefaultTierMinorUnits)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.OrderID != "order_abc123" {
		t.Fatalf("expected gateway order id, got %q", order.OrderID)
	}
	if order.Status != models.OrderStatusCreated {
		t.Fatalf("expected status created, got %q", order.Status)
	}
	if order.UserID != "user-1" {
		t.Fatalf("expected order bound to user-1, got %q", order.UserID)
	}
	if _, ok := repo.orders["order_abc123"]; !ok {
		t.Fatalf("expected order persisted")
	}
}

func TestCreateOrder_UnknownTier(t *testing.T) {
	repo := newFakeRepository()
	gw := &fakeGateway{nextID: "order_abc123"}
	svc := newTestService(repo, gw)

	_, err := svc.CreateOrder(context.Background(), "user-1", 100)
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("expected no gateway call for a rejected amount")
	}
}

func TestCreateOrder_GatewayDown(t *testing.T) {
	repo := newFakeRepository()
	gw := &fakeGateway{err: ErrGatewayUnavailable}
	svc := newTestService(repo, gw)

	_, err := svc.CreateOrder(context.Background(), "user-1", DefaultTierMinorUnits)
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no local record after gateway failure")
	}
}

func seedCreatedOrder(repo *fakeRepository, orderID, userID string) {
	repo.CreateOrder(&models.PaymentOrder{
		OrderID:         orderID,
		UserID:          userID,
		AmountMinorUnit: DefaultTierMinorUnits,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
	})
}

func TestListOrders(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	seedCreatedOrder(repo, "order_old", "user-1")
	seedCreatedOrder(repo, "order_other", "user-2")
	seedCreatedOrder(repo, "order_new", "user-1")

	orders, err := svc.ListOrders("user-1")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for user-1, got %d", len(orders))
	}
	if orders[0].OrderID != "order_new" || orders[1].OrderID != "order_old" {
		t.Fatalf("expected newest first, got %q then %q", orders[0].OrderID, orders[1].OrderID)
	}
}

func TestVerifyPayment_GrantsOnce(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	seedCreatedOrder(repo, "order_1", "user-1")
	sig := ComputeSignature("order_1", "pay_1", testSecret)

	granted, err := svc.VerifyPayment(context.Background(), "user-1", "order_1", "pay_1", sig)
	if err != nil || !granted {
		t.Fatalf("first verify = (%v, %v), want (true, nil)", granted, err)
	}
	if !repo.premiumUsers["user-1"] {
		t.Fatalf("expected premium granted")
	}

	// Replay with the same confirmation must succeed without a second grant.
	granted, err = svc.VerifyPayment(context.Background(), "user-1", "order_1", "pay_1", sig)
	if err != nil || !granted {
		t.Fatalf("replayed verify = (%v, %v), want (true, nil)", granted, err)
	}
	if repo.grantCalls != 1 {
		t.Fatalf("expected exactly one grant, got %d", repo.grantCalls)
	}
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	seedCreatedOrder(repo, "order_1", "user-1")

	sig := []byte(ComputeSignature("order_1", "pay_1", testSecret))
	if sig[3] == '0' {
		sig[3] = '1'
	} else {
		sig[3] = '0'
	}

	granted, err := svc.VerifyPayment(context.Background(), "user-1", "order_1", "pay_1", string(sig))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if granted {
		t.Fatalf("expected no grant on tampered signature")
	}
	if repo.orders["order_1"].Status != models.OrderStatusCreated {
		t.Fatalf("expected order to stay created, got %q", repo.orders["order_1"].Status)
	}
	if repo.premiumUsers["user-1"] {
		t.Fatalf("expected user to stay non-premium")
	}
}

func TestVerifyPayment_CrossUser(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	seedCreatedOrder(repo, "order_1", "user-a")
	sig := ComputeSignature("order_1", "pay_1", testSecret)

	granted, err := svc.VerifyPayment(context.Background(), "user-b", "order_1", "pay_1", sig)
	if !errors.Is(err, ErrOrderOwnerMismatch) {
		t.Fatalf("expected ErrOrderOwnerMismatch, got %v", err)
	}
	if granted {
		t.Fatalf("expected no grant for a foreign order")
	}
	if repo.orders["order_1"].Status != models.OrderStatusCreated {
		t.Fatalf("expected order untouched")
	}
}

func TestVerifyPayment_UnknownOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})

	_, err := svc.VerifyPayment(context.Background(), "user-1", "order_missing", "pay_1", "whatever")
	if !errors.Is(err, ErrUnknownOrder) {
		t.Fatalf("expected ErrUnknownOrder, got %v", err)
	}
}

// lostRaceRepository simulates a concurrent winner: the conditional
// update moves zero rows, but the re-read shows the order verified.
type lostRaceRepository struct {
	*fakeRepository
}

func (f *lostRaceRepository) VerifyAndGrant(orderID, userID, paymentID string) (bool, error) {
	if order, ok := f.orders[orderID]; ok {
		order.Status = models.OrderStatusVerified
	}
	return false, nil
}

func TestVerifyPayment_LostRaceIsSuccess(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(&lostRaceRepository{repo}, &fakeGateway{})
	seedCreatedOrder(repo, "order_1", "user-1")
	sig := ComputeSignature("order_1", "pay_1", testSecret)

	granted, err := svc.VerifyPayment(context.Background(), "user-1", "order_1", "pay_1", sig)
	if err != nil || !granted {
		t.Fatalf("losing caller = (%v, %v), want (true, nil)", granted, err)
	}
}

func TestVerifyPayment_StuckOrderFails(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})
	repo.orders["order_1"] = &models.PaymentOrder{
		OrderID: "order_1",
		UserID:  "user-1",
		Status:  models.OrderStatusFailed,
	}
	sig := ComputeSignature("order_1", "pay_1", testSecret)

	granted, err := svc.VerifyPayment(context.Background(), "user-1", "order_1", "pay_1", sig)
	if err == nil || granted {
		t.Fatalf("expected error for a terminal order, got (%v, %v)", granted, err)
	}
}
