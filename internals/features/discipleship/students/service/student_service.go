package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/students/dto"
	"disciplehub_backend/internals/features/discipleship/students/model"
	"disciplehub_backend/internals/features/discipleship/students/repository"
	helper "disciplehub_backend/internals/helpers"
)

type StudentService struct {
	repo repository.StudentRepository
	now  func() time.Time
}

func NewStudentService(repo repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo, now: time.Now}
}

// Create starts a discipleship journey: both milestones open, the
// eight First Steps untouched, created_at == updated_at.
func (s *StudentService) Create(ctx context.Context, churchID uuid.UUID, req *dto.CreateStudentRequest) (*model.StudentModel, error) {
	now := s.now()

	startedAt := now
	if req.StudentStartedAt != nil {
		startedAt = *req.StudentStartedAt
	}

	m := &model.StudentModel{
		StudentChurchID:          churchID,
		StudentUserID:            req.StudentUserID,
		StudentAssignedTeacherID: req.StudentAssignedTeacherID,
		StudentStartedAt:         startedAt,
		StudentCreatedAt:         now,
		StudentUpdatedAt:         now,
	}
	m.SetFirstSteps(model.NewFirstSteps())

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *StudentService) GetByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudentModel, error) {
	return s.repo.FindByID(ctx, id, churchID)
}

func (s *StudentService) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging, opts repository.ListStudentsOptions) ([]model.StudentModel, bool, error) {
	return s.repo.ListByChurch(ctx, churchID, paging, opts)
}

func (s *StudentService) Update(ctx context.Context, id, churchID uuid.UUID, req *dto.UpdateStudentRequest) (*model.StudentModel, error) {
	updates := map[string]any{
		"student_updated_at": s.now(),
	}
	if req.StudentAssignedTeacherID != nil {
		updates["student_assigned_teacher_id"] = *req.StudentAssignedTeacherID
	}
	if req.StudentCompletedAt != nil {
		updates["student_completed_at"] = *req.StudentCompletedAt
	}
	return s.repo.Update(ctx, id, churchID, updates)
}

// UpdateMilestone marks one New Birth milestone. When completed is set
// without a date, the current time is recorded.
func (s *StudentService) UpdateMilestone(ctx context.Context, id, churchID uuid.UUID, req *dto.UpdateMilestoneRequest) (*model.StudentModel, error) {
	now := s.now()

	date := req.Date
	if req.Completed && date == nil {
		date = &now
	}

	updates := map[string]any{
		"student_updated_at": now,
	}
	switch req.Milestone {
	case "water-baptism":
		updates["student_water_baptism_completed"] = req.Completed
		updates["student_water_baptism_date"] = date
		if req.Notes != nil {
			updates["student_water_baptism_notes"] = *req.Notes
		}
	case "holy-ghost":
		updates["student_holy_ghost_completed"] = req.Completed
		updates["student_holy_ghost_date"] = date
		if req.Notes != nil {
			updates["student_holy_ghost_notes"] = *req.Notes
		}
	default:
		return nil, helper.NewValidationErr("milestone", "unknown milestone")
	}

	return s.repo.Update(ctx, id, churchID, updates)
}

// UpdateStep rewrites one First Steps entry. Steps may be completed in
// any order; only the addressed entry changes.
func (s *StudentService) UpdateStep(ctx context.Context, id, churchID uuid.UUID, req *dto.UpdateStepRequest) (*model.StudentModel, error) {
	m, err := s.repo.FindByID(ctx, id, churchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	steps := m.FirstSteps()
	found := false
	for i := range steps {
		if steps[i].StepKey != req.StepKey {
			continue
		}
		found = true
		if req.Started != nil {
			steps[i].Started = *req.Started
			if *req.Started && steps[i].StartedAt == nil {
				steps[i].StartedAt = &now
			}
			if !*req.Started {
				steps[i].StartedAt = nil
			}
		}
		if req.Completed != nil {
			steps[i].Completed = *req.Completed
			if *req.Completed {
				if steps[i].CompletedAt == nil {
					steps[i].CompletedAt = &now
				}
				// completing a step implies it was started
				if !steps[i].Started {
					steps[i].Started = true
					steps[i].StartedAt = &now
				}
			} else {
				steps[i].CompletedAt = nil
			}
		}
		if req.MentorID != nil {
			steps[i].MentorID = req.MentorID
		}
		if req.Notes != nil {
			steps[i].Notes = req.Notes
		}
		break
	}
	if !found {
		return nil, helper.NewValidationErr("step_key", "unknown step")
	}

	tmp := model.StudentModel{}
	tmp.SetFirstSteps(steps)
	updates := map[string]any{
		"student_first_steps": tmp.StudentFirstSteps,
		"student_updated_at":  now,
	}
	return s.repo.Update(ctx, id, churchID, updates)
}

// Stats aggregates milestone and step completion across the church.
func (s *StudentService) Stats(ctx context.Context, churchID uuid.UUID) (*dto.StudentStatsResponse, error) {
	students, err := s.repo.AllByChurch(ctx, churchID)
	if err != nil {
		return nil, err
	}

	stats := &dto.StudentStatsResponse{
		TotalStudents: len(students),
		StepStats:     make([]dto.StepStat, len(model.FirstStepDefs)),
	}
	for i, def := range model.FirstStepDefs {
		stats.StepStats[i] = dto.StepStat{StepKey: def.Key, StepName: def.Name}
	}

	for i := range students {
		st := &students[i]
		if st.StudentWaterBaptismCompleted {
			stats.WaterBaptismCompleted++
		}
		if st.StudentHolyGhostCompleted {
			stats.HolyGhostCompleted++
		}
		if st.StudentWaterBaptismCompleted && st.StudentHolyGhostCompleted {
			stats.BothMilestonesComplete++
		}
		for j, step := range st.FirstSteps() {
			if j >= len(stats.StepStats) {
				break
			}
			if step.Started {
				stats.StepStats[j].Started++
			}
			if step.Completed {
				stats.StepStats[j].Completed++
			}
		}
	}
	return stats, nil
}
