package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyModel is one curriculum walk-through for one student. Its
// lessons are materialized at creation and die with it.
type StudyModel struct {
	StudyID         uuid.UUID   `gorm:"column:study_id;type:uuid;default:gen_random_uuid();primaryKey" json:"study_id"`
	StudyChurchID   uuid.UUID   `gorm:"column:study_church_id;type:uuid;not null;index" json:"study_church_id"`
	StudyStudentID  uuid.UUID   `gorm:"column:study_student_id;type:uuid;not null;index" json:"study_student_id"`
	StudyCurriculum string      `gorm:"column:study_curriculum;type:varchar(50);not null" json:"study_curriculum"`
	StudyStatus     StudyStatus `gorm:"column:study_status;type:varchar(20);not null" json:"study_status"`
	StudyNotes      *string     `gorm:"column:study_notes;type:text" json:"study_notes,omitempty"`

	StudyCreatedAt time.Time `gorm:"column:study_created_at;not null" json:"study_created_at"`
	StudyUpdatedAt time.Time `gorm:"column:study_updated_at;not null" json:"study_updated_at"`

	// Populated on reads that ask for the aggregate.
	Lessons []LessonModel `gorm:"foreignKey:LessonStudyID;references:StudyID" json:"lessons,omitempty"`
}

func (StudyModel) TableName() string {
	return "bible_studies"
}
