package dto

import (
	"time"

	"github.com/google/uuid"

	helperAuth "disciplehub_backend/internals/helpers/auth"

	"disciplehub_backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	UserFullName   string `json:"user_full_name" validate:"required,min=2,max=100"`
	UserEmail      string `json:"user_email" validate:"required,email"`
	UserPassword   string `json:"user_password" validate:"required,min=8,max=72"`
	UserChurchRole string `json:"user_church_role" validate:"omitempty,oneof=member mentor teacher manager pastor"`
}

type UpdateUserRequest struct {
	UserFullName   *string `json:"user_full_name" validate:"omitempty,min=2,max=100"`
	UserChurchRole *string `json:"user_church_role" validate:"omitempty,oneof=member mentor teacher manager pastor"`
}

type UserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	UserChurchID   uuid.UUID `json:"user_church_id"`
	UserFullName   string    `json:"user_full_name"`
	UserEmail      string    `json:"user_email"`
	UserChurchRole string    `json:"user_church_role"`
	// Display metadata for the frontend role badge.
	UserRoleLabel string `json:"user_role_label"`
	UserRoleColor string `json:"user_role_color"`

	UserCreatedAt time.Time `json:"user_created_at"`
	UserUpdatedAt time.Time `json:"user_updated_at"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:         m.UserID,
		UserChurchID:   m.UserChurchID,
		UserFullName:   m.UserFullName,
		UserEmail:      m.UserEmail,
		UserChurchRole: m.UserChurchRole,
		UserRoleLabel:  helperAuth.RoleLabel(m.UserChurchRole),
		UserRoleColor:  helperAuth.RoleColor(m.UserChurchRole),
		UserCreatedAt:  m.UserCreatedAt,
		UserUpdatedAt:  m.UserUpdatedAt,
	}
}

func ToUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToUserResponse(&ms[i]))
	}
	return out
}
