package dto

import (
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/students/model"
)

type CreateStudentRequest struct {
	StudentUserID            uuid.UUID  `json:"student_user_id" validate:"required"`
	StudentAssignedTeacherID *uuid.UUID `json:"student_assigned_teacher_id"`
	StudentStartedAt         *time.Time `json:"student_started_at"`
}

type UpdateStudentRequest struct {
	StudentAssignedTeacherID *uuid.UUID `json:"student_assigned_teacher_id"`
	StudentCompletedAt       *time.Time `json:"student_completed_at"`
}

// UpdateMilestoneRequest marks one New Birth milestone.
type UpdateMilestoneRequest struct {
	Milestone string     `json:"milestone" validate:"required,oneof=water-baptism holy-ghost"`
	Completed bool       `json:"completed"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateStepRequest updates one First Steps entry by key.
type UpdateStepRequest struct {
	StepKey   string     `json:"step_key" validate:"required"`
	Started   *bool      `json:"started"`
	Completed *bool      `json:"completed"`
	MentorID  *uuid.UUID `json:"mentor_id"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

type MilestoneResponse struct {
	Completed bool       `json:"completed"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

type StudentResponse struct {
	StudentID                uuid.UUID  `json:"student_id"`
	StudentChurchID          uuid.UUID  `json:"student_church_id"`
	StudentUserID            uuid.UUID  `json:"student_user_id"`
	StudentAssignedTeacherID *uuid.UUID `json:"student_assigned_teacher_id,omitempty"`

	NewBirthWaterBaptism MilestoneResponse    `json:"new_birth_water_baptism"`
	NewBirthHolyGhost    MilestoneResponse    `json:"new_birth_holy_ghost"`
	FirstSteps           []model.StepProgress `json:"first_steps"`

	StudentStartedAt   time.Time  `json:"student_started_at"`
	StudentCompletedAt *time.Time `json:"student_completed_at,omitempty"`
	StudentCreatedAt   time.Time  `json:"student_created_at"`
	StudentUpdatedAt   time.Time  `json:"student_updated_at"`
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:                m.StudentID,
		StudentChurchID:          m.StudentChurchID,
		StudentUserID:            m.StudentUserID,
		StudentAssignedTeacherID: m.StudentAssignedTeacherID,
		NewBirthWaterBaptism: MilestoneResponse{
			Completed: m.StudentWaterBaptismCompleted,
			Date:      m.StudentWaterBaptismDate,
			Notes:     m.StudentWaterBaptismNotes,
		},
		NewBirthHolyGhost: MilestoneResponse{
			Completed: m.StudentHolyGhostCompleted,
			Date:      m.StudentHolyGhostDate,
			Notes:     m.StudentHolyGhostNotes,
		},
		FirstSteps:         m.FirstSteps(),
		StudentStartedAt:   m.StudentStartedAt,
		StudentCompletedAt: m.StudentCompletedAt,
		StudentCreatedAt:   m.StudentCreatedAt,
		StudentUpdatedAt:   m.StudentUpdatedAt,
	}
}

func ToStudentResponses(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToStudentResponse(&ms[i]))
	}
	return out
}

/* ===============================
   Stats
=================================*/

type StepStat struct {
	StepKey   string `json:"step_key"`
	StepName  string `json:"step_name"`
	Started   int    `json:"started"`
	Completed int    `json:"completed"`
}

type StudentStatsResponse struct {
	TotalStudents          int        `json:"total_students"`
	WaterBaptismCompleted  int        `json:"water_baptism_completed"`
	HolyGhostCompleted     int        `json:"holy_ghost_completed"`
	BothMilestonesComplete int        `json:"both_milestones_complete"`
	StepStats              []StepStat `json:"step_stats"`
}
