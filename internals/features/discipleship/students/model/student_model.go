package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel tracks one person's discipleship journey within a church.
type StudentModel struct {
	StudentID                uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentChurchID          uuid.UUID  `gorm:"column:student_church_id;type:uuid;not null;index" json:"student_church_id"`
	StudentUserID            uuid.UUID  `gorm:"column:student_user_id;type:uuid;not null" json:"student_user_id"`
	StudentAssignedTeacherID *uuid.UUID `gorm:"column:student_assigned_teacher_id;type:uuid" json:"student_assigned_teacher_id,omitempty"`

	// New Birth milestones
	StudentWaterBaptismCompleted bool       `gorm:"column:student_water_baptism_completed;not null;default:false" json:"student_water_baptism_completed"`
	StudentWaterBaptismDate      *time.Time `gorm:"column:student_water_baptism_date" json:"student_water_baptism_date,omitempty"`
	StudentWaterBaptismNotes     *string    `gorm:"column:student_water_baptism_notes;type:text" json:"student_water_baptism_notes,omitempty"`
	StudentHolyGhostCompleted    bool       `gorm:"column:student_holy_ghost_completed;not null;default:false" json:"student_holy_ghost_completed"`
	StudentHolyGhostDate         *time.Time `gorm:"column:student_holy_ghost_date" json:"student_holy_ghost_date,omitempty"`
	StudentHolyGhostNotes        *string    `gorm:"column:student_holy_ghost_notes;type:text" json:"student_holy_ghost_notes,omitempty"`

	// First Steps progression, stored as an ordered JSON array of
	// StepProgress. Order is fixed; completion order is not enforced.
	StudentFirstSteps datatypes.JSON `gorm:"column:student_first_steps;not null" json:"student_first_steps"`

	StudentStartedAt   time.Time  `gorm:"column:student_started_at;not null" json:"student_started_at"`
	StudentCompletedAt *time.Time `gorm:"column:student_completed_at" json:"student_completed_at,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

/* ===============================
   First Steps
=================================*/

// StepProgress is one entry of the student_first_steps JSON array.
type StepProgress struct {
	StepKey     string     `json:"step_key"`
	StepName    string     `json:"step_name"`
	Started     bool       `json:"started"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	MentorID    *uuid.UUID `json:"mentor_id,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type StepDef struct {
	Key  string
	Name string
}

// FirstStepDefs is the fixed eight-step progression, in order.
var FirstStepDefs = []StepDef{
	{Key: "new-convert-class", Name: "New Convert Class"},
	{Key: "personal-devotions", Name: "Personal Devotions"},
	{Key: "prayer-partner", Name: "Prayer Partner"},
	{Key: "scripture-memory", Name: "Scripture Memory"},
	{Key: "small-group", Name: "Join a Small Group"},
	{Key: "serving-team", Name: "Join a Serving Team"},
	{Key: "faithful-giving", Name: "Faithful Giving"},
	{Key: "share-your-faith", Name: "Share Your Faith"},
}

// NewFirstSteps builds the initial, untouched progression.
func NewFirstSteps() []StepProgress {
	steps := make([]StepProgress, 0, len(FirstStepDefs))
	for _, def := range FirstStepDefs {
		steps = append(steps, StepProgress{StepKey: def.Key, StepName: def.Name})
	}
	return steps
}

// FirstSteps decodes the JSON column; a corrupt or empty column yields
// the pristine progression so readers never see a partial list.
func (m *StudentModel) FirstSteps() []StepProgress {
	var steps []StepProgress
	if m.StudentFirstSteps != nil {
		_ = json.Unmarshal(m.StudentFirstSteps, &steps)
	}
	if len(steps) != len(FirstStepDefs) {
		return NewFirstSteps()
	}
	return steps
}

// SetFirstSteps encodes the progression back into the JSON column.
func (m *StudentModel) SetFirstSteps(steps []StepProgress) {
	raw, _ := json.Marshal(steps)
	m.StudentFirstSteps = datatypes.JSON(raw)
}
