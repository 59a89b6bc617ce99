package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"disciplehub_backend/internals/features/churches/churches/dto"
	"disciplehub_backend/internals/features/churches/churches/model"
	"disciplehub_backend/internals/features/churches/churches/repository"
	helper "disciplehub_backend/internals/helpers"
)

type ChurchService struct {
	repo repository.ChurchRepository
	now  func() time.Time
}

func NewChurchService(repo repository.ChurchRepository) *ChurchService {
	return &ChurchService{repo: repo, now: time.Now}
}

// Create provisions a new tenant: slug from name, tier starts at free,
// created_at == updated_at.
func (s *ChurchService) Create(ctx context.Context, req *dto.CreateChurchRequest) (*model.ChurchModel, error) {
	m := req.ToModel()

	slug, err := s.repo.UniqueSlug(ctx, m.ChurchName)
	if err != nil {
		return nil, err
	}
	m.ChurchSlug = slug
	m.ChurchSubscriptionTier = "free"

	now := s.now()
	m.ChurchCreatedAt = now
	m.ChurchUpdatedAt = now

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChurchService) GetByID(ctx context.Context, id uuid.UUID) (*model.ChurchModel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ChurchService) GetBySlug(ctx context.Context, slug string) (*model.ChurchModel, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *ChurchService) List(ctx context.Context, paging helper.Paging) ([]model.ChurchModel, bool, error) {
	return s.repo.List(ctx, paging)
}

// Update merges non-nil fields and re-stamps updated_at.
func (s *ChurchService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateChurchRequest) (*model.ChurchModel, error) {
	updates := map[string]any{
		"church_updated_at": s.now(),
	}
	if req.ChurchName != nil {
		updates["church_name"] = *req.ChurchName
	}
	if req.ChurchAddressStreet != nil {
		updates["church_address_street"] = *req.ChurchAddressStreet
	}
	if req.ChurchAddressCity != nil {
		updates["church_address_city"] = *req.ChurchAddressCity
	}
	if req.ChurchAddressState != nil {
		updates["church_address_state"] = *req.ChurchAddressState
	}
	if req.ChurchAddressPostal != nil {
		updates["church_address_postal"] = *req.ChurchAddressPostal
	}
	if req.ChurchAddressCountry != nil {
		updates["church_address_country"] = *req.ChurchAddressCountry
	}
	if req.ChurchTimezone != nil {
		updates["church_timezone"] = *req.ChurchTimezone
	}
	if req.ChurchWeekStartDay != nil {
		updates["church_week_start_day"] = *req.ChurchWeekStartDay
	}
	if req.ChurchEnabledCurricula != nil {
		raw, _ := json.Marshal(req.ChurchEnabledCurricula)
		updates["church_enabled_curricula"] = datatypes.JSON(raw)
	}
	if req.ChurchContactEmail != nil {
		updates["church_contact_email"] = *req.ChurchContactEmail
	}
	if req.ChurchContactPhone != nil {
		updates["church_contact_phone"] = *req.ChurchContactPhone
	}

	return s.repo.Update(ctx, id, updates)
}

func (s *ChurchService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
