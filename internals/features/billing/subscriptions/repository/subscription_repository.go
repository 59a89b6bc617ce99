package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "disciplehub_backend/internals/helpers"

	"disciplehub_backend/internals/features/billing/subscriptions/model"
)

type SubscriptionRepository interface {
	FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.ChurchSubscriptionModel, error)
	FindByOrderID(ctx context.Context, orderID string) (*model.ChurchSubscriptionModel, error)
	ListByChurch(ctx context.Context, churchID uuid.UUID) ([]model.ChurchSubscriptionModel, error)
	Create(ctx context.Context, m *model.ChurchSubscriptionModel) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.ChurchSubscriptionModel, error) {
	var m model.ChurchSubscriptionModel
	err := r.db.WithContext(ctx).
		First(&m, "subscription_id = ? AND subscription_church_id = ?", id, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByOrderID is webhook-only: the gateway does not know our tenant
// ids, so the order id is the lookup key.
func (r *subscriptionRepository) FindByOrderID(ctx context.Context, orderID string) (*model.ChurchSubscriptionModel, error) {
	var m model.ChurchSubscriptionModel
	err := r.db.WithContext(ctx).
		First(&m, "subscription_order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *subscriptionRepository) ListByChurch(ctx context.Context, churchID uuid.UUID) ([]model.ChurchSubscriptionModel, error) {
	var rows []model.ChurchSubscriptionModel
	err := r.db.WithContext(ctx).
		Where("subscription_church_id = ?", churchID).
		Order("subscription_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *subscriptionRepository) Create(ctx context.Context, m *model.ChurchSubscriptionModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&model.ChurchSubscriptionModel{}).
		Where("subscription_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}
