package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "disciplehub_backend/internals/helpers"

	"disciplehub_backend/internals/features/discipleship/studies/model"
)

type StudyRepository interface {
	FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error)
	// FindByIDWithLessons loads the aggregate, lessons ordered by number.
	FindByIDWithLessons(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error)
	ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.StudyModel, bool, error)
	ListByStudent(ctx context.Context, studentID, churchID uuid.UUID) ([]model.StudyModel, error)
	// CreateWithLessons persists the study and all its lessons in one
	// transaction: either the whole aggregate exists or none of it.
	CreateWithLessons(ctx context.Context, study *model.StudyModel, lessons []model.LessonModel) error
	Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudyModel, error)
	// DeleteWithLessons removes the aggregate in one transaction.
	DeleteWithLessons(ctx context.Context, id, churchID uuid.UUID) error

	FindLessonByID(ctx context.Context, lessonID, churchID uuid.UUID) (*model.LessonModel, error)
	UpdateLesson(ctx context.Context, lessonID, churchID uuid.UUID, updates map[string]any) (*model.LessonModel, error)
}

type studyRepository struct {
	db *gorm.DB
}

func NewStudyRepository(db *gorm.DB) StudyRepository {
	return &studyRepository{db: db}
}

func (r *studyRepository) FindByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error) {
	var m model.StudyModel
	err := r.db.WithContext(ctx).
		First(&m, "study_id = ? AND study_church_id = ?", id, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studyRepository) FindByIDWithLessons(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error) {
	var m model.StudyModel
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lesson_number ASC")
		}).
		First(&m, "study_id = ? AND study_church_id = ?", id, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studyRepository) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.StudyModel, bool, error) {
	q := r.db.WithContext(ctx).
		Model(&model.StudyModel{}).
		Where("study_church_id = ?", churchID)
	if !paging.Cursor.IsZero() {
		q = q.Where("(study_created_at, study_id) < (?, ?)", paging.Cursor.CreatedAt, paging.Cursor.ID)
	}

	var rows []model.StudyModel
	err := q.Order("study_created_at DESC, study_id DESC").
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

func (r *studyRepository) ListByStudent(ctx context.Context, studentID, churchID uuid.UUID) ([]model.StudyModel, error) {
	var rows []model.StudyModel
	err := r.db.WithContext(ctx).
		Where("study_student_id = ? AND study_church_id = ?", studentID, churchID).
		Order("study_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *studyRepository) CreateWithLessons(ctx context.Context, study *model.StudyModel, lessons []model.LessonModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(study).Error; err != nil {
			return err
		}
		for i := range lessons {
			lessons[i].LessonStudyID = study.StudyID
			if err := tx.Create(&lessons[i]).Error; err != nil {
				return err
			}
		}
		study.Lessons = lessons
		return nil
	})
}

func (r *studyRepository) Update(ctx context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudyModel, error) {
	res := r.db.WithContext(ctx).
		Model(&model.StudyModel{}).
		Where("study_id = ? AND study_church_id = ?", id, churchID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindByID(ctx, id, churchID)
}

func (r *studyRepository) DeleteWithLessons(ctx context.Context, id, churchID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("study_id = ? AND study_church_id = ?", id, churchID).
			Delete(&model.StudyModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrNotFound
		}
		return tx.Where("lesson_study_id = ? AND lesson_church_id = ?", id, churchID).
			Delete(&model.LessonModel{}).Error
	})
}

func (r *studyRepository) FindLessonByID(ctx context.Context, lessonID, churchID uuid.UUID) (*model.LessonModel, error) {
	var m model.LessonModel
	err := r.db.WithContext(ctx).
		First(&m, "lesson_id = ? AND lesson_church_id = ?", lessonID, churchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studyRepository) UpdateLesson(ctx context.Context, lessonID, churchID uuid.UUID, updates map[string]any) (*model.LessonModel, error) {
	res := r.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Where("lesson_id = ? AND lesson_church_id = ?", lessonID, churchID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindLessonByID(ctx, lessonID, churchID)
}
