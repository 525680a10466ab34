package payment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

// Service owns order creation and payment verification. It is the only
// code path that can flip a user to premium via payment.
type Service struct {
	repo    Repository
	gateway GatewayClient
	tiers   Tiers
	secret  string
}

// NewService creates a payment service from injected collaborators.
func NewService(repo Repository, gateway GatewayClient, tiers Tiers, secret string) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		tiers:   tiers,
		secret:  secret,
	}
}

// NewServiceFromDB wires the service with the real gateway client and
// env-configured tiers and secret.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(
		NewRepository(db),
		NewClientFromEnv(),
		TiersFromEnv(),
		env.GetEnv("RAZORPAY_KEY_SECRET", ""),
	)
}

// CreateOrder validates the amount against the configured tiers, creates
// the order with the gateway and records it as created. The gateway call
// holds no store locks; a failure surfaces as ErrGatewayUnavailable and
// leaves no local record behind.
func (s *Service) CreateOrder(ctx context.Context, userID string, amountMinorUnits int64) (*models.PaymentOrder, error) {
	if !s.tiers.Allows(amountMinorUnits) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, amountMinorUnits)
	}

	receipt := "rcpt_" + uuid.NewString()[:18]
	gwOrder, err := s.gateway.CreateOrder(ctx, amountMinorUnits, "INR", receipt)
	if err != nil {
		return nil, err
	}

	order := &models.PaymentOrder{
		OrderID:         gwOrder.ID,
		UserID:          userID,
		AmountMinorUnit: gwOrder.Amount,
		Currency:        gwOrder.Currency,
		Receipt:         receipt,
		Status:          models.OrderStatusCreated,
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the user's checkout history, newest first.
func (s *Service) ListOrders(userID string) ([]models.PaymentOrder, error) {
	return s.repo.ListOrdersByUser(userID)
}

// VerifyPayment validates a client-submitted payment confirmation and
// grants premium. The call is idempotent: replays of an already verified
// order succeed without a second grant, and a losing concurrent caller
// lands on the same success path.
func (s *Service) VerifyPayment(ctx context.Context, userID, orderID, paymentID, signature string) (bool, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUnknownOrder
		}
		return false, err
	}
	if order.UserID != userID {
		log.Printf("payment verify: order %s claimed by user %s but belongs to %s", orderID, userID, order.UserID)
		return false, ErrOrderOwnerMismatch
	}
	if order.IsVerified() {
		return true, nil
	}

	if !VerifySignature(orderID, paymentID, signature, s.secret) {
		log.Printf("payment verify: invalid signature for order %s (user %s)", orderID, userID)
		return false, ErrInvalidSignature
	}

	transitioned, err := s.repo.VerifyAndGrant(orderID, userID, paymentID)
	if err != nil {
		return false, err
	}
	if transitioned {
		return true, nil
	}

	// Zero rows moved: a concurrent caller must have verified first.
	// Re-read and confirm rather than guessing.
	order, err = s.repo.GetOrder(orderID)
	if err != nil {
		return false, err
	}
	if order.IsVerified() {
		return true, nil
	}
	return false, fmt.Errorf("order %s in unexpected status %q", orderID, order.Status)
}
