package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "disciplehub_backend/internals/helpers"

	"disciplehub_backend/internals/features/churches/churches/model"
)

// ChurchRepository is the data access contract for the tenant root.
type ChurchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ChurchModel, error)
	FindBySlug(ctx context.Context, slug string) (*model.ChurchModel, error)
	List(ctx context.Context, paging helper.Paging) ([]model.ChurchModel, bool, error)
	Create(ctx context.Context, m *model.ChurchModel) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.ChurchModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UniqueSlug derives a slug from base that no live church uses.
	UniqueSlug(ctx context.Context, base string) (string, error)
}

type churchRepository struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) ChurchRepository {
	return &churchRepository{db: db}
}

func (r *churchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ChurchModel, error) {
	var m model.ChurchModel
	err := r.db.WithContext(ctx).
		First(&m, "church_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *churchRepository) FindBySlug(ctx context.Context, slug string) (*model.ChurchModel, error) {
	var m model.ChurchModel
	err := r.db.WithContext(ctx).
		First(&m, "lower(church_slug) = lower(?)", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List pages by (created_at, id) descending. Fetches limit+1 rows to
// learn whether another page exists.
func (r *churchRepository) List(ctx context.Context, paging helper.Paging) ([]model.ChurchModel, bool, error) {
	q := r.db.WithContext(ctx).Model(&model.ChurchModel{})
	if !paging.Cursor.IsZero() {
		q = q.Where("(church_created_at, church_id) < (?, ?)", paging.Cursor.CreatedAt, paging.Cursor.ID)
	}

	var rows []model.ChurchModel
	err := q.Order("church_created_at DESC, church_id DESC").
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

func (r *churchRepository) Create(ctx context.Context, m *model.ChurchModel) error {
	err := r.db.WithContext(ctx).Create(m).Error
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return helper.NewValidationErr("church_slug", "slug already taken")
	}
	return err
}

func (r *churchRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.ChurchModel, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ChurchModel{}).
		Where("church_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *churchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("church_id = ?", id).
		Delete(&model.ChurchModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (r *churchRepository) UniqueSlug(ctx context.Context, base string) (string, error) {
	return helper.GenerateUniqueSlug(r.db.WithContext(ctx), helper.SlugOptions{
		Table:            "churches",
		SlugColumn:       "church_slug",
		SoftDeleteColumn: "church_deleted_at",
		DefaultBase:      "church",
	}, base)
}
