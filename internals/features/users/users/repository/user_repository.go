package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "disciplehub_backend/internals/helpers"

	"disciplehub_backend/internals/features/users/users/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.UserModel, error)
	ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.UserModel, bool, error)
	Create(ctx context.Context, m *model.UserModel) error
	Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.UserModel, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		First(&m, "user_id = ? AND user_church_id = ?", id, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *userRepository) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.UserModel, bool, error) {
	q := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_church_id = ?", churchID)
	if !paging.Cursor.IsZero() {
		q = q.Where("(user_created_at, user_id) < (?, ?)", paging.Cursor.CreatedAt, paging.Cursor.ID)
	}

	var rows []model.UserModel
	err := q.Order("user_created_at DESC, user_id DESC").
		Limit(paging.Limit + 1).
		Find(&rows).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(rows) > paging.Limit
	if hasMore {
		rows = rows[:paging.Limit]
	}
	return rows, hasMore, nil
}

func (r *userRepository) Create(ctx context.Context, m *model.UserModel) error {
	err := r.db.WithContext(ctx).Create(m).Error
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return helper.NewValidationErr("user_email", "email already registered")
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.UserModel, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ? AND user_church_id = ?", id, churchID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindByID(ctx, id, churchID)
}
