package dto

import (
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/studies/model"
)

type CreateStudyRequest struct {
	StudyStudentID  uuid.UUID `json:"study_student_id" validate:"required"`
	StudyCurriculum string    `json:"study_curriculum" validate:"required,min=1,max=50"`
}

type UpdateStudyRequest struct {
	StudyCurriculum *string `json:"study_curriculum" validate:"omitempty,min=1,max=50"`
	StudyNotes      *string `json:"study_notes" validate:"omitempty,max=2000"`
}

type UpdateStudyStatusRequest struct {
	StudyStatus string `json:"study_status" validate:"required"`
}

type UpdateLessonStatusRequest struct {
	LessonStatus string  `json:"lesson_status" validate:"required"`
	LessonNotes  *string `json:"lesson_notes" validate:"omitempty,max=2000"`
}

type LessonResponse struct {
	LessonID          uuid.UUID  `json:"lesson_id"`
	LessonStudyID     uuid.UUID  `json:"lesson_study_id"`
	LessonNumber      int        `json:"lesson_number"`
	LessonTitle       string     `json:"lesson_title"`
	LessonStatus      string     `json:"lesson_status"`
	LessonCompletedAt *time.Time `json:"lesson_completed_at,omitempty"`
	LessonNotes       *string    `json:"lesson_notes,omitempty"`
	LessonCreatedAt   time.Time  `json:"lesson_created_at"`
	LessonUpdatedAt   time.Time  `json:"lesson_updated_at"`
}

type StudyResponse struct {
	StudyID         uuid.UUID        `json:"study_id"`
	StudyChurchID   uuid.UUID        `json:"study_church_id"`
	StudyStudentID  uuid.UUID        `json:"study_student_id"`
	StudyCurriculum string           `json:"study_curriculum"`
	StudyStatus     string           `json:"study_status"`
	StudyNotes      *string          `json:"study_notes,omitempty"`
	StudyCreatedAt  time.Time        `json:"study_created_at"`
	StudyUpdatedAt  time.Time        `json:"study_updated_at"`
	Lessons         []LessonResponse `json:"lessons,omitempty"`
}

func ToLessonResponse(m *model.LessonModel) *LessonResponse {
	return &LessonResponse{
		LessonID:          m.LessonID,
		LessonStudyID:     m.LessonStudyID,
		LessonNumber:      m.LessonNumber,
		LessonTitle:       m.LessonTitle,
		LessonStatus:      string(m.LessonStatus),
		LessonCompletedAt: m.LessonCompletedAt,
		LessonNotes:       m.LessonNotes,
		LessonCreatedAt:   m.LessonCreatedAt,
		LessonUpdatedAt:   m.LessonUpdatedAt,
	}
}

func ToStudyResponse(m *model.StudyModel) *StudyResponse {
	resp := &StudyResponse{
		StudyID:         m.StudyID,
		StudyChurchID:   m.StudyChurchID,
		StudyStudentID:  m.StudyStudentID,
		StudyCurriculum: m.StudyCurriculum,
		StudyStatus:     string(m.StudyStatus),
		StudyNotes:      m.StudyNotes,
		StudyCreatedAt:  m.StudyCreatedAt,
		StudyUpdatedAt:  m.StudyUpdatedAt,
	}
	for i := range m.Lessons {
		resp.Lessons = append(resp.Lessons, *ToLessonResponse(&m.Lessons[i]))
	}
	return resp
}

func ToStudyResponses(ms []model.StudyModel) []StudyResponse {
	out := make([]StudyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToStudyResponse(&ms[i]))
	}
	return out
}
