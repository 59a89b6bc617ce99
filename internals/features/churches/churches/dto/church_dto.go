package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"disciplehub_backend/internals/features/churches/churches/model"
)

// Request from frontend → backend
type CreateChurchRequest struct {
	ChurchName string `json:"church_name" validate:"required,min=2,max=100"`

	ChurchAddressStreet  *string `json:"church_address_street" validate:"omitempty,max=255"`
	ChurchAddressCity    *string `json:"church_address_city" validate:"omitempty,max=100"`
	ChurchAddressState   *string `json:"church_address_state" validate:"omitempty,max=100"`
	ChurchAddressPostal  *string `json:"church_address_postal" validate:"omitempty,max=20"`
	ChurchAddressCountry *string `json:"church_address_country" validate:"omitempty,max=100"`

	ChurchTimezone         string   `json:"church_timezone" validate:"omitempty,max=64"`
	ChurchWeekStartDay     string   `json:"church_week_start_day" validate:"omitempty,oneof=sunday monday"`
	ChurchEnabledCurricula []string `json:"church_enabled_curricula" validate:"omitempty,dive,min=1"`

	ChurchContactEmail *string `json:"church_contact_email" validate:"omitempty,email"`
	ChurchContactPhone *string `json:"church_contact_phone" validate:"omitempty,max=30"`
}

// Partial update; nil fields are left untouched.
type UpdateChurchRequest struct {
	ChurchName *string `json:"church_name" validate:"omitempty,min=2,max=100"`

	ChurchAddressStreet  *string `json:"church_address_street" validate:"omitempty,max=255"`
	ChurchAddressCity    *string `json:"church_address_city" validate:"omitempty,max=100"`
	ChurchAddressState   *string `json:"church_address_state" validate:"omitempty,max=100"`
	ChurchAddressPostal  *string `json:"church_address_postal" validate:"omitempty,max=20"`
	ChurchAddressCountry *string `json:"church_address_country" validate:"omitempty,max=100"`

	ChurchTimezone         *string  `json:"church_timezone" validate:"omitempty,max=64"`
	ChurchWeekStartDay     *string  `json:"church_week_start_day" validate:"omitempty,oneof=sunday monday"`
	ChurchEnabledCurricula []string `json:"church_enabled_curricula" validate:"omitempty,dive,min=1"`

	ChurchContactEmail *string `json:"church_contact_email" validate:"omitempty,email"`
	ChurchContactPhone *string `json:"church_contact_phone" validate:"omitempty,max=30"`
}

// Response to frontend
type ChurchResponse struct {
	ChurchID   uuid.UUID `json:"church_id"`
	ChurchName string    `json:"church_name"`
	ChurchSlug string    `json:"church_slug"`

	ChurchAddressStreet  *string `json:"church_address_street,omitempty"`
	ChurchAddressCity    *string `json:"church_address_city,omitempty"`
	ChurchAddressState   *string `json:"church_address_state,omitempty"`
	ChurchAddressPostal  *string `json:"church_address_postal,omitempty"`
	ChurchAddressCountry *string `json:"church_address_country,omitempty"`

	ChurchTimezone         string   `json:"church_timezone"`
	ChurchWeekStartDay     string   `json:"church_week_start_day"`
	ChurchEnabledCurricula []string `json:"church_enabled_curricula"`

	ChurchSubscriptionTier string `json:"church_subscription_tier"`

	ChurchContactEmail *string `json:"church_contact_email,omitempty"`
	ChurchContactPhone *string `json:"church_contact_phone,omitempty"`

	ChurchCreatedAt time.Time `json:"church_created_at"`
	ChurchUpdatedAt time.Time `json:"church_updated_at"`
}

// Convert request → model (slug, tier, and timestamps are stamped by
// the service).
func (r *CreateChurchRequest) ToModel() *model.ChurchModel {
	tz := r.ChurchTimezone
	if tz == "" {
		tz = "UTC"
	}
	weekStart := r.ChurchWeekStartDay
	if weekStart == "" {
		weekStart = "sunday"
	}

	curricula := r.ChurchEnabledCurricula
	if curricula == nil {
		curricula = []string{}
	}
	curriculaJSON, _ := json.Marshal(curricula)

	return &model.ChurchModel{
		ChurchName:             r.ChurchName,
		ChurchAddressStreet:    r.ChurchAddressStreet,
		ChurchAddressCity:      r.ChurchAddressCity,
		ChurchAddressState:     r.ChurchAddressState,
		ChurchAddressPostal:    r.ChurchAddressPostal,
		ChurchAddressCountry:   r.ChurchAddressCountry,
		ChurchTimezone:         tz,
		ChurchWeekStartDay:     weekStart,
		ChurchEnabledCurricula: datatypes.JSON(curriculaJSON),
		ChurchContactEmail:     r.ChurchContactEmail,
		ChurchContactPhone:     r.ChurchContactPhone,
	}
}

// Convert model → response
func ToChurchResponse(m *model.ChurchModel) *ChurchResponse {
	var curricula []string
	if m.ChurchEnabledCurricula != nil {
		_ = json.Unmarshal(m.ChurchEnabledCurricula, &curricula)
	}
	if curricula == nil {
		curricula = []string{}
	}

	return &ChurchResponse{
		ChurchID:               m.ChurchID,
		ChurchName:             m.ChurchName,
		ChurchSlug:             m.ChurchSlug,
		ChurchAddressStreet:    m.ChurchAddressStreet,
		ChurchAddressCity:      m.ChurchAddressCity,
		ChurchAddressState:     m.ChurchAddressState,
		ChurchAddressPostal:    m.ChurchAddressPostal,
		ChurchAddressCountry:   m.ChurchAddressCountry,
		ChurchTimezone:         m.ChurchTimezone,
		ChurchWeekStartDay:     m.ChurchWeekStartDay,
		ChurchEnabledCurricula: curricula,
		ChurchSubscriptionTier: m.ChurchSubscriptionTier,
		ChurchContactEmail:     m.ChurchContactEmail,
		ChurchContactPhone:     m.ChurchContactPhone,
		ChurchCreatedAt:        m.ChurchCreatedAt,
		ChurchUpdatedAt:        m.ChurchUpdatedAt,
	}
}

func ToChurchResponses(ms []model.ChurchModel) []ChurchResponse {
	out := make([]ChurchResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToChurchResponse(&ms[i]))
	}
	return out
}
