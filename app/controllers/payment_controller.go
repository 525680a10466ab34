package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/database"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/payment"
	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/usercontext"
)

// paymentService is swappable for tests; the default wires the real
// gateway and the shared DB.
var paymentService *payment.Service

func getPaymentService() *payment.Service {
	if paymentService != nil {
		return paymentService
	}
	return payment.NewServiceFromDB(database.GetDB())
}

type createOrderRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// HandleCreateOrder creates a gateway order for one of the configured
// premium tiers. The amount is validated server-side; an arbitrary
// client-chosen integer is rejected.
func HandleCreateOrder(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if err := validator.New().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "amount is required"})
	}

	svc := getPaymentService()
	order, err := svc.CreateOrder(c.UserContext(), userCtx.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnknownTier):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown_tier", "message": "Amount does not match an available plan"})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "gateway_unavailable", "message": "Payment gateway unavailable, please try again"})
		default:
			log.Printf("create order failed for user %s: %v", userCtx.UserID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to create order"})
		}
	}

	return c.JSON(fiber.Map{
		"id":       order.OrderID,
		"amount":   order.AmountMinorUnit,
		"currency": order.Currency,
	})
}

// HandleVerifyPayment validates the signed confirmation forwarded by the
// client and grants premium. Signature and ownership failures are
// security-relevant: they are logged inside the service and surfaced to
// the user as a generic verification failure, never retried silently.
func HandleVerifyPayment(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "Invalid request body"})
	}
	if err := validator.New().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "order id, payment id and signature are required"})
	}

	svc := getPaymentService()
	granted, err := svc.VerifyPayment(c.UserContext(), userCtx.UserID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrUnknownOrder),
			errors.Is(err, payment.ErrOrderOwnerMismatch),
			errors.Is(err, payment.ErrInvalidSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "verification_failed", "message": "Payment verification failed, contact support"})
		case errors.Is(err, payment.ErrGatewayUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "gateway_unavailable", "message": "Payment gateway unavailable, please try again"})
		default:
			log.Printf("verify payment failed for user %s order %s: %v", userCtx.UserID, req.RazorpayOrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Payment verification failed"})
		}
	}

	return c.JSON(fiber.Map{"success": granted})
}

// HandleListOrders returns the caller's own checkout history so a user
// disputing a charge can see what was recorded, newest first. Orders are
// never deleted, so created and failed attempts show up too.
func HandleListOrders(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	svc := getPaymentService()
	orders, err := svc.ListOrders(userCtx.UserID)
	if err != nil {
		log.Printf("list orders failed for user %s: %v", userCtx.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Failed to load orders"})
	}

	items := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		items = append(items, fiber.Map{
			"order_id":   o.OrderID,
			"amount":     o.AmountMinorUnit,
			"currency":   o.Currency,
			"status":     o.Status,
			"created_at": o.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"orders": items})
}
