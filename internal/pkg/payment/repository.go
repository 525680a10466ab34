package payment

import (
	"github.com/yatinsh21/ipuGotPlaced-sub000/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the payment service.
type Repository interface {
	CreateOrder(order *models.PaymentOrder) error
	GetOrder(orderID string) (*models.PaymentOrder, error)
	// ListOrdersByUser returns every checkout attempt of the user, newest
	// first. Orders are retained in all states for audit and dispute
	// resolution, so this includes created and failed rows.
	ListOrdersByUser(userID string) ([]models.PaymentOrder, error)
	// VerifyAndGrant performs the atomic created->verified transition
	// together with the premium grant. It returns true when this call
	// made the transition, false when the order was no longer in the
	// created state (a concurrent caller won, or the status is terminal).
	VerifyAndGrant(orderID, userID, paymentID string) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateOrder(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *gormRepository) GetOrder(orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := r.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *gormRepository) ListOrdersByUser(userID string) ([]models.PaymentOrder, error) {
	var orders []models.PaymentOrder
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// VerifyAndGrant marks the order verified and sets the user's premium
// flag in one transaction. The status predicate in the UPDATE is what
// makes concurrent verify calls safe: only one transaction can observe
// status = created, every later one affects zero rows and rolls back to
// the idempotent success path in the service.
func (r *gormRepository) VerifyAndGrant(orderID, userID, paymentID string) (bool, error) {
	transitioned := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PaymentOrder{}).
			Where("order_id = ? AND user_id = ? AND status = ?", orderID, userID, models.OrderStatusCreated).
			Updates(map[string]interface{}{
				"status":     models.OrderStatusVerified,
				"payment_id": paymentID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		transitioned = true
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("is_premium", true).Error
	})
	if err != nil {
		return false, err
	}
	return transitioned, nil
}
