package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonModel is owned exclusively by its study; it carries the church
// id as well so tenant scoping never needs a join.
type LessonModel struct {
	LessonID       uuid.UUID    `gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_id"`
	LessonStudyID  uuid.UUID    `gorm:"column:lesson_study_id;type:uuid;not null;index" json:"lesson_study_id"`
	LessonChurchID uuid.UUID    `gorm:"column:lesson_church_id;type:uuid;not null;index" json:"lesson_church_id"`
	LessonNumber   int          `gorm:"column:lesson_number;not null" json:"lesson_number"`
	LessonTitle    string       `gorm:"column:lesson_title;type:varchar(200);not null" json:"lesson_title"`
	LessonStatus   LessonStatus `gorm:"column:lesson_status;type:varchar(20);not null" json:"lesson_status"`

	LessonCompletedAt *time.Time `gorm:"column:lesson_completed_at" json:"lesson_completed_at,omitempty"`
	LessonNotes       *string    `gorm:"column:lesson_notes;type:text" json:"lesson_notes,omitempty"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string {
	return "bible_study_lessons"
}
