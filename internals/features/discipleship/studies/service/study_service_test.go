package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disciplehub_backend/internals/features/discipleship/studies/dto"
	"disciplehub_backend/internals/features/discipleship/studies/model"
	helper "disciplehub_backend/internals/helpers"
)

type tenantKey struct {
	churchID uuid.UUID
	id       uuid.UUID
}

// fakeStudyRepo keeps aggregates in maps keyed by (church, id), so a
// lookup with the wrong church misses exactly like a scoped query.
type fakeStudyRepo struct {
	studies map[tenantKey]*model.StudyModel
	lessons map[tenantKey]*model.LessonModel

	lastStudyUpdate  map[string]any
	lastLessonUpdate map[string]any
}

func newFakeStudyRepo() *fakeStudyRepo {
	return &fakeStudyRepo{
		studies: make(map[tenantKey]*model.StudyModel),
		lessons: make(map[tenantKey]*model.LessonModel),
	}
}

func (f *fakeStudyRepo) FindByID(_ context.Context, id, churchID uuid.UUID) (*model.StudyModel, error) {
	m, ok := f.studies[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStudyRepo) FindByIDWithLessons(ctx context.Context, id, churchID uuid.UUID) (*model.StudyModel, error) {
	m, err := f.FindByID(ctx, id, churchID)
	if err != nil {
		return nil, err
	}
	for _, l := range f.lessons {
		if l.LessonStudyID == m.StudyID {
			m.Lessons = append(m.Lessons, *l)
		}
	}
	return m, nil
}

func (f *fakeStudyRepo) ListByChurch(_ context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.StudyModel, bool, error) {
	var out []model.StudyModel
	for k, m := range f.studies {
		if k.churchID == churchID {
			out = append(out, *m)
		}
	}
	return out, false, nil
}

func (f *fakeStudyRepo) ListByStudent(_ context.Context, studentID, churchID uuid.UUID) ([]model.StudyModel, error) {
	var out []model.StudyModel
	for k, m := range f.studies {
		if k.churchID == churchID && m.StudyStudentID == studentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeStudyRepo) CreateWithLessons(_ context.Context, study *model.StudyModel, lessons []model.LessonModel) error {
	study.StudyID = uuid.New()
	for i := range lessons {
		lessons[i].LessonID = uuid.New()
		lessons[i].LessonStudyID = study.StudyID
		cp := lessons[i]
		f.lessons[tenantKey{cp.LessonChurchID, cp.LessonID}] = &cp
	}
	study.Lessons = lessons
	cp := *study
	cp.Lessons = nil
	f.studies[tenantKey{study.StudyChurchID, study.StudyID}] = &cp
	return nil
}

func (f *fakeStudyRepo) Update(_ context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudyModel, error) {
	m, ok := f.studies[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	f.lastStudyUpdate = updates
	if v, ok := updates["study_status"]; ok {
		m.StudyStatus = v.(model.StudyStatus)
	}
	if v, ok := updates["study_notes"]; ok {
		s := v.(string)
		m.StudyNotes = &s
	}
	if v, ok := updates["study_updated_at"]; ok {
		m.StudyUpdatedAt = v.(time.Time)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStudyRepo) DeleteWithLessons(_ context.Context, id, churchID uuid.UUID) error {
	k := tenantKey{churchID, id}
	if _, ok := f.studies[k]; !ok {
		return helper.ErrNotFound
	}
	delete(f.studies, k)
	for lk, l := range f.lessons {
		if l.LessonStudyID == id {
			delete(f.lessons, lk)
		}
	}
	return nil
}

func (f *fakeStudyRepo) FindLessonByID(_ context.Context, lessonID, churchID uuid.UUID) (*model.LessonModel, error) {
	m, ok := f.lessons[tenantKey{churchID, lessonID}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStudyRepo) UpdateLesson(_ context.Context, lessonID, churchID uuid.UUID, updates map[string]any) (*model.LessonModel, error) {
	m, ok := f.lessons[tenantKey{churchID, lessonID}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	f.lastLessonUpdate = updates
	if v, ok := updates["lesson_status"]; ok {
		m.LessonStatus = v.(model.LessonStatus)
	}
	if v, ok := updates["lesson_completed_at"]; ok {
		if v == nil {
			m.LessonCompletedAt = nil
		} else {
			t := v.(time.Time)
			m.LessonCompletedAt = &t
		}
	}
	if v, ok := updates["lesson_updated_at"]; ok {
		m.LessonUpdatedAt = v.(time.Time)
	}
	if v, ok := updates["lesson_notes"]; ok {
		s := v.(string)
		m.LessonNotes = &s
	}
	cp := *m
	return &cp, nil
}

func newTestStudyService(repo *fakeStudyRepo, at time.Time) *StudyService {
	svc := NewStudyService(repo)
	svc.now = func() time.Time { return at }
	return svc
}

func TestStudyCreateMaterializesCatalog(t *testing.T) {
	repo := newFakeStudyRepo()
	stamp := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc := newTestStudyService(repo, stamp)

	churchID := uuid.New()
	studentID := uuid.New()

	study, err := svc.Create(context.Background(), churchID, &dto.CreateStudyRequest{
		StudyStudentID:  studentID,
		StudyCurriculum: "new-believers",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StudyStatusInProgress, study.StudyStatus)
	assert.Equal(t, stamp, study.StudyCreatedAt)
	assert.Equal(t, stamp, study.StudyUpdatedAt)
	require.Len(t, study.Lessons, 8)

	titles := []string{
		"Salvation and the New Birth",
		"Repentance",
		"Water Baptism",
		"The Gift of the Holy Ghost",
		"Prayer and Devotion",
		"Reading the Word",
		"Life in the Church",
		"Sharing Your Testimony",
	}
	for i, l := range study.Lessons {
		assert.Equal(t, i+1, l.LessonNumber)
		assert.Equal(t, titles[i], l.LessonTitle)
		assert.Equal(t, model.LessonStatusNotStarted, l.LessonStatus)
		assert.Equal(t, stamp, l.LessonCreatedAt)
		assert.Equal(t, stamp, l.LessonUpdatedAt)
		assert.Nil(t, l.LessonCompletedAt)
		assert.Equal(t, study.StudyID, l.LessonStudyID)
		assert.Equal(t, churchID, l.LessonChurchID)
	}
}

func TestStudyCreateUnknownCurriculum(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateStudyRequest{
		StudyStudentID:  uuid.New(),
		StudyCurriculum: "made-up-track",
	})
	assert.ErrorIs(t, err, helper.ErrUnknownCurriculum)
	assert.Empty(t, repo.studies)
}

func TestStudyUpdateRejectsCurriculumChange(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	other := "foundations"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &dto.UpdateStudyRequest{
		StudyCurriculum: &other,
	})
	assert.True(t, helper.IsValidationErr(err))
	assert.Nil(t, repo.lastStudyUpdate)
}

func TestStudyUpdateMissingID(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	notes := "meets on tuesdays"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &dto.UpdateStudyRequest{
		StudyNotes: &notes,
	})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestStudyGetScopedToChurch(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	churchA := uuid.New()
	churchB := uuid.New()
	study, err := svc.Create(context.Background(), churchA, &dto.CreateStudyRequest{
		StudyStudentID:  uuid.New(),
		StudyCurriculum: "spiritual-growth",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), study.StudyID, churchA)
	require.NoError(t, err)
	assert.Equal(t, study.StudyID, got.StudyID)
	assert.Len(t, got.Lessons, 6)

	_, err = svc.GetByID(context.Background(), study.StudyID, churchB)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestStudyUpdateStatusTouchesOnlyStatusAndStamp(t *testing.T) {
	repo := newFakeStudyRepo()
	created := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	svc := newTestStudyService(repo, created)

	churchID := uuid.New()
	study, err := svc.Create(context.Background(), churchID, &dto.CreateStudyRequest{
		StudyStudentID:  uuid.New(),
		StudyCurriculum: "new-believers",
	})
	require.NoError(t, err)

	later := created.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	got, err := svc.UpdateStatus(context.Background(), study.StudyID, churchID, &dto.UpdateStudyStatusRequest{
		StudyStatus: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StudyStatusCompleted, got.StudyStatus)
	assert.Equal(t, later, got.StudyUpdatedAt)
	assert.Equal(t, created, got.StudyCreatedAt)

	require.NotNil(t, repo.lastStudyUpdate)
	assert.Len(t, repo.lastStudyUpdate, 2)
	assert.Contains(t, repo.lastStudyUpdate, "study_status")
	assert.Contains(t, repo.lastStudyUpdate, "study_updated_at")
}

func TestStudyUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.StudyStatus
		to      string
		wantErr error
	}{
		{"in-progress to completed", model.StudyStatusInProgress, "completed", nil},
		{"in-progress to dropped", model.StudyStatusInProgress, "dropped", nil},
		{"dropped back to in-progress", model.StudyStatusDropped, "in-progress", nil},
		{"completed is terminal", model.StudyStatusCompleted, "in-progress", helper.ErrInvalidTransition},
		{"completed cannot drop", model.StudyStatusCompleted, "dropped", helper.ErrInvalidTransition},
		{"dropped cannot complete", model.StudyStatusDropped, "completed", helper.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeStudyRepo()
			svc := NewStudyService(repo)

			churchID := uuid.New()
			id := uuid.New()
			repo.studies[tenantKey{churchID, id}] = &model.StudyModel{
				StudyID:         id,
				StudyChurchID:   churchID,
				StudyCurriculum: "new-believers",
				StudyStatus:     tt.from,
			}

			_, err := svc.UpdateStatus(context.Background(), id, churchID, &dto.UpdateStudyStatusRequest{
				StudyStatus: tt.to,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.lastStudyUpdate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStudyUpdateStatusUnknownValue(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), &dto.UpdateStudyStatusRequest{
		StudyStatus: "paused",
	})
	assert.True(t, helper.IsValidationErr(err))
}

func TestLessonStatusStampsCompletedAt(t *testing.T) {
	repo := newFakeStudyRepo()
	stamp := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestStudyService(repo, stamp)

	churchID := uuid.New()
	study, err := svc.Create(context.Background(), churchID, &dto.CreateStudyRequest{
		StudyStudentID:  uuid.New(),
		StudyCurriculum: "new-believers",
	})
	require.NoError(t, err)
	lessonID := study.Lessons[0].LessonID

	done := stamp.Add(24 * time.Hour)
	svc.now = func() time.Time { return done }

	got, err := svc.UpdateLessonStatus(context.Background(), lessonID, churchID, &dto.UpdateLessonStatusRequest{
		LessonStatus: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LessonStatusCompleted, got.LessonStatus)
	require.NotNil(t, got.LessonCompletedAt)
	assert.Equal(t, done, *got.LessonCompletedAt)

	// Completed is terminal for lessons too.
	_, err = svc.UpdateLessonStatus(context.Background(), lessonID, churchID, &dto.UpdateLessonStatusRequest{
		LessonStatus: "in-progress",
	})
	assert.ErrorIs(t, err, helper.ErrInvalidTransition)
}

func TestLessonStatusResetClearsCompletedAt(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := newTestStudyService(repo, time.Now().UTC())

	churchID := uuid.New()
	id := uuid.New()
	doneAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo.lessons[tenantKey{churchID, id}] = &model.LessonModel{
		LessonID:          id,
		LessonChurchID:    churchID,
		LessonStudyID:     uuid.New(),
		LessonNumber:      1,
		LessonStatus:      model.LessonStatusInProgress,
		LessonCompletedAt: &doneAt,
	}

	got, err := svc.UpdateLessonStatus(context.Background(), id, churchID, &dto.UpdateLessonStatusRequest{
		LessonStatus: "not-started",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LessonStatusNotStarted, got.LessonStatus)
	assert.Nil(t, got.LessonCompletedAt)
}

func TestStudyDeleteRemovesLessons(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	churchID := uuid.New()
	study, err := svc.Create(context.Background(), churchID, &dto.CreateStudyRequest{
		StudyStudentID:  uuid.New(),
		StudyCurriculum: "foundations",
	})
	require.NoError(t, err)
	require.Len(t, repo.lessons, 10)

	require.NoError(t, svc.Delete(context.Background(), study.StudyID, churchID))
	assert.Empty(t, repo.studies)
	assert.Empty(t, repo.lessons)

	assert.ErrorIs(t, svc.Delete(context.Background(), study.StudyID, churchID), helper.ErrNotFound)
}
