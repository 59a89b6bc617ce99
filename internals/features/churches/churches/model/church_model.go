package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChurchModel is the tenant root. Every other entity carries a
// church_id and is only ever resolved within that church's scope.
type ChurchModel struct {
	ChurchID   uuid.UUID `gorm:"column:church_id;type:uuid;default:gen_random_uuid();primaryKey" json:"church_id"`
	ChurchName string    `gorm:"column:church_name;type:varchar(100);not null" json:"church_name"`
	ChurchSlug string    `gorm:"column:church_slug;type:varchar(100);uniqueIndex;not null" json:"church_slug"`

	// Address
	ChurchAddressStreet  *string `gorm:"column:church_address_street;type:text" json:"church_address_street,omitempty"`
	ChurchAddressCity    *string `gorm:"column:church_address_city;type:varchar(100)" json:"church_address_city,omitempty"`
	ChurchAddressState   *string `gorm:"column:church_address_state;type:varchar(100)" json:"church_address_state,omitempty"`
	ChurchAddressPostal  *string `gorm:"column:church_address_postal;type:varchar(20)" json:"church_address_postal,omitempty"`
	ChurchAddressCountry *string `gorm:"column:church_address_country;type:varchar(100)" json:"church_address_country,omitempty"`

	// Settings
	ChurchTimezone         string         `gorm:"column:church_timezone;type:varchar(64);not null;default:'UTC'" json:"church_timezone"`
	ChurchWeekStartDay     string         `gorm:"column:church_week_start_day;type:varchar(10);not null;default:'sunday'" json:"church_week_start_day"`
	ChurchEnabledCurricula datatypes.JSON `gorm:"column:church_enabled_curricula" json:"church_enabled_curricula,omitempty"`

	ChurchSubscriptionTier string `gorm:"column:church_subscription_tier;type:varchar(20);not null;default:'free'" json:"church_subscription_tier"`

	// Contact
	ChurchContactEmail *string `gorm:"column:church_contact_email;type:varchar(255)" json:"church_contact_email,omitempty"`
	ChurchContactPhone *string `gorm:"column:church_contact_phone;type:varchar(30)" json:"church_contact_phone,omitempty"`

	ChurchCreatedAt time.Time      `gorm:"column:church_created_at;not null" json:"church_created_at"`
	ChurchUpdatedAt time.Time      `gorm:"column:church_updated_at;not null" json:"church_updated_at"`
	ChurchDeletedAt gorm.DeletedAt `gorm:"column:church_deleted_at;index" json:"church_deleted_at,omitempty"`
}

func (ChurchModel) TableName() string {
	return "churches"
}
