package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/studies/curriculum"
	"disciplehub_backend/internals/features/discipleship/studies/dto"
	"disciplehub_backend/internals/features/discipleship/studies/model"
	"disciplehub_backend/internals/features/discipleship/studies/repository"
	helper "disciplehub_backend/internals/helpers"
)

type StudyService struct {
	repo repository.StudyRepository
	now  func() time.Time
}

func NewStudyService(repo repository.StudyRepository) *StudyService {
	return &StudyService{repo: repo, now: time.Now}
}

// Create opens a study and materializes one lesson per catalog entry,
// all not-started, all carrying the study's timestamps. The repository
// persists the aggregate in a single transaction, so a half-created
// study is never observable.
func (s *StudyService) Create(ctx context.Context, churchID uuid.UUID, req *dto.CreateStudyRequest) (*model.StudyModel, error) {
	defs, err := curriculum.Lessons(req.StudyCurriculum)
	if err != nil {
		return nil, err
	}

	now := s.now()
	study := &model.StudyModel{
		StudyChurchID:   churchID,
		StudyStudentID:  req.StudyStudentID,
		StudyCurriculum: req.StudyCurriculum,
		StudyStatus:     model.StudyStatusInProgress,
		StudyCreatedAt:  now,
		StudyUpdatedAt:  now,
	}

	lessons := make([]model.LessonModel, 0, len(defs))
	for _, def := range defs {
		lessons = append(lessons, model.LessonModel{
			LessonChurchID:  churchID,
			LessonNumber:    def.Number,
			LessonTitle:     def.Title,
			LessonStatus:    model.LessonStatusNotStarted,
			LessonCreatedAt: now,
			LessonUpdatedAt: now,
		})
	}

	if err := s.repo.CreateWithLessons(ctx, study, lessons); err != nil {
		return nil, err
	}
	return study, nil
}

func (s *StudyService) GetByID(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error) {
	return s.repo.FindByIDWithLessons(ctx, id, churchID)
}

func (s *StudyService) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.StudyModel, bool, error) {
	return s.repo.ListByChurch(ctx, churchID, paging)
}

func (s *StudyService) ListByStudent(ctx context.Context, studentID, churchID uuid.UUID) ([]model.StudyModel, error) {
	return s.repo.ListByStudent(ctx, studentID, churchID)
}

// Update merges partial fields and re-stamps updated_at. The curriculum
// of an existing study cannot change once lessons exist.
func (s *StudyService) Update(ctx context.Context, id, churchID uuid.UUID, req *dto.UpdateStudyRequest) (*model.StudyModel, error) {
	if req.StudyCurriculum != nil {
		return nil, helper.NewValidationErr("study_curriculum", "curriculum cannot change after creation")
	}
	updates := map[string]any{
		"study_updated_at": s.now(),
	}
	if req.StudyNotes != nil {
		updates["study_notes"] = *req.StudyNotes
	}
	return s.repo.Update(ctx, id, churchID, updates)
}

// UpdateStatus changes only status and updated_at, honoring the
// transition table.
func (s *StudyService) UpdateStatus(ctx context.Context, id, churchID uuid.UUID, req *dto.UpdateStudyStatusRequest) (*model.StudyModel, error) {
	next, err := model.ParseStudyStatus(req.StudyStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id, churchID)
	if err != nil {
		return nil, err
	}
	if !current.StudyStatus.CanTransitionTo(next) {
		return nil, helper.ErrInvalidTransition
	}

	updates := map[string]any{
		"study_status":     next,
		"study_updated_at": s.now(),
	}
	return s.repo.Update(ctx, id, churchID, updates)
}

func (s *StudyService) Delete(ctx context.Context, id, churchID uuid.UUID) error {
	return s.repo.DeleteWithLessons(ctx, id, churchID)
}

// UpdateLessonStatus advances one lesson, stamping completed_at when it
// reaches completed and clearing it when it leaves.
func (s *StudyService) UpdateLessonStatus(ctx context.Context, lessonID, churchID uuid.UUID, req *dto.UpdateLessonStatusRequest) (*model.LessonModel, error) {
	next, err := model.ParseLessonStatus(req.LessonStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindLessonByID(ctx, lessonID, churchID)
	if err != nil {
		return nil, err
	}
	if !current.LessonStatus.CanTransitionTo(next) {
		return nil, helper.ErrInvalidTransition
	}

	now := s.now()
	updates := map[string]any{
		"lesson_status":     next,
		"lesson_updated_at": now,
	}
	if next == model.LessonStatusCompleted {
		updates["lesson_completed_at"] = now
	} else {
		updates["lesson_completed_at"] = nil
	}
	if req.LessonNotes != nil {
		updates["lesson_notes"] = *req.LessonNotes
	}

	return s.repo.UpdateLesson(ctx, lessonID, churchID, updates)
}
