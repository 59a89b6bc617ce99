package dto

import (
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/billing/subscriptions/model"
)

type CreateCheckoutRequest struct {
	SubscriptionTier string `json:"subscription_tier" validate:"required,oneof=standard premium"`
}

// PaymentNotificationRequest is the subset of the midtrans webhook body
// the service acts on.
type PaymentNotificationRequest struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
}

type SubscriptionResponse struct {
	SubscriptionID        uuid.UUID `json:"subscription_id"`
	SubscriptionChurchID  uuid.UUID `json:"subscription_church_id"`
	SubscriptionTier      string    `json:"subscription_tier"`
	SubscriptionAmount    int64     `json:"subscription_amount"`
	SubscriptionStatus    string    `json:"subscription_status"`
	SubscriptionOrderID   string    `json:"subscription_order_id"`
	SubscriptionSnapToken *string   `json:"subscription_snap_token,omitempty"`
	SubscriptionCreatedAt time.Time `json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time `json:"subscription_updated_at"`
}

func ToSubscriptionResponse(m *model.ChurchSubscriptionModel) *SubscriptionResponse {
	return &SubscriptionResponse{
		SubscriptionID:        m.SubscriptionID,
		SubscriptionChurchID:  m.SubscriptionChurchID,
		SubscriptionTier:      m.SubscriptionTier,
		SubscriptionAmount:    m.SubscriptionAmount,
		SubscriptionStatus:    m.SubscriptionStatus,
		SubscriptionOrderID:   m.SubscriptionOrderID,
		SubscriptionSnapToken: m.SubscriptionSnapToken,
		SubscriptionCreatedAt: m.SubscriptionCreatedAt,
		SubscriptionUpdatedAt: m.SubscriptionUpdatedAt,
	}
}
