package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "disciplehub_backend/internals/helpers"

	"disciplehub_backend/internals/features/discipleship/students/model"
)

// ListStudentsOptions narrows ListByChurch beyond the tenant scope.
type ListStudentsOptions struct {
	AssignedTeacherID *uuid.UUID
}

type StudentRepository interface {
	FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudentModel, error)
	ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging, opts ListStudentsOptions) ([]model.StudentModel, bool, error)
	// AllByChurch returns the full tenant population for stat aggregation.
	AllByChurch(ctx context.Context, churchID uuid.UUID) ([]model.StudentModel, error)
	Create(ctx context.Context, m *model.StudentModel) error
	Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudentModel, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).
		First(&m, "student_id = ? AND student_church_id = ?", id, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studentRepository) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging, opts ListStudentsOptions) ([]model.StudentModel, bool, error) {
	q := r.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("student_church_id = ?", churchID)
	if opts.AssignedTeacherID != nil {
		q = q.Where("student_assigned_teacher_id = ?", *opts.AssignedTeacherID)
	}
	if !paging.Cursor.IsZero() {
		q = q.Where("(student_created_at, student_id) < (?, ?)", paging.Cursor.CreatedAt, paging.Cursor.ID)
	}

	var rows []model.StudentModel
	err := q.Order("student_created_at DESC, student_id DESC").
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

func (r *studentRepository) AllByChurch(ctx context.Context, churchID uuid.UUID) ([]model.StudentModel, error) {
	var rows []model.StudentModel
	err := r.db.WithContext(ctx).
		Where("student_church_id = ?", churchID).
		Find(&rows).Error
	return rows, err
}

func (r *studentRepository) Create(ctx context.Context, m *model.StudentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *studentRepository) Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudentModel, error) {
	res := r.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("student_id = ? AND student_church_id = ?", id, churchID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindByID(ctx, id, churchID)
}
