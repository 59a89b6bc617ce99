package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus mirrors the midtrans transaction lifecycle we care
// about; anything else from the gateway maps to failed.
const (
	SubscriptionStatusPending = "pending"
	SubscriptionStatusPaid    = "paid"
	SubscriptionStatusFailed  = "failed"
)

type ChurchSubscriptionModel struct {
	SubscriptionID       uuid.UUID `gorm:"column:subscription_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subscription_id"`
	SubscriptionChurchID uuid.UUID `gorm:"column:subscription_church_id;type:uuid;not null;index" json:"subscription_church_id"`
	SubscriptionTier     string    `gorm:"column:subscription_tier;type:varchar(20);not null" json:"subscription_tier"`
	SubscriptionAmount   int64     `gorm:"column:subscription_amount;not null" json:"subscription_amount"`
	SubscriptionStatus   string    `gorm:"column:subscription_status;type:varchar(20);not null;default:'pending'" json:"subscription_status"`

	SubscriptionOrderID   string  `gorm:"column:subscription_order_id;type:varchar(64);uniqueIndex;not null" json:"subscription_order_id"`
	SubscriptionSnapToken *string `gorm:"column:subscription_snap_token;type:text" json:"subscription_snap_token,omitempty"`

	SubscriptionCreatedAt time.Time `gorm:"column:subscription_created_at;not null" json:"subscription_created_at"`
	SubscriptionUpdatedAt time.Time `gorm:"column:subscription_updated_at;not null" json:"subscription_updated_at"`
}

func (ChurchSubscriptionModel) TableName() string {
	return "church_subscriptions"
}
