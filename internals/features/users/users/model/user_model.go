package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserChurchID     uuid.UUID `gorm:"column:user_church_id;type:uuid;not null;index" json:"user_church_id"`
	UserFullName     string    `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserEmail        string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:varchar(100);not null" json:"-"`
	// Role within the church; see constants.AllRoles.
	UserChurchRole string `gorm:"column:user_church_role;type:varchar(20);not null;default:'member'" json:"user_church_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
