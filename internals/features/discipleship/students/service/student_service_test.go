package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"disciplehub_backend/internals/features/discipleship/students/dto"
	"disciplehub_backend/internals/features/discipleship/students/model"
	"disciplehub_backend/internals/features/discipleship/students/repository"
	helper "disciplehub_backend/internals/helpers"
)

type tenantKey struct {
	churchID uuid.UUID
	id       uuid.UUID
}

type fakeStudentRepo struct {
	students   map[tenantKey]*model.StudentModel
	lastUpdate map[string]any
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[tenantKey]*model.StudentModel)}
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id, churchID uuid.UUID) (*model.StudentModel, error) {
	m, ok := f.students[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStudentRepo) ListByChurch(_ context.Context, churchID uuid.UUID, paging helper.Paging, opts repository.ListStudentsOptions) ([]model.StudentModel, bool, error) {
	var out []model.StudentModel
	for k, m := range f.students {
		if k.churchID != churchID {
			continue
		}
		if opts.AssignedTeacherID != nil {
			if m.StudentAssignedTeacherID == nil || *m.StudentAssignedTeacherID != *opts.AssignedTeacherID {
				continue
			}
		}
		out = append(out, *m)
	}
	return out, false, nil
}

func (f *fakeStudentRepo) AllByChurch(_ context.Context, churchID uuid.UUID) ([]model.StudentModel, error) {
	var out []model.StudentModel
	for k, m := range f.students {
		if k.churchID == churchID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, m *model.StudentModel) error {
	m.StudentID = uuid.New()
	cp := *m
	f.students[tenantKey{m.StudentChurchID, m.StudentID}] = &cp
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.StudentModel, error) {
	m, ok := f.students[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	f.lastUpdate = updates

	setBool := func(dst *bool, key string) {
		if v, ok := updates[key]; ok {
			*dst = v.(bool)
		}
	}
	setTimePtr := func(dst **time.Time, key string) {
		if v, ok := updates[key]; ok {
			if v == nil {
				*dst = nil
			} else if t, ok := v.(*time.Time); ok {
				*dst = t
			} else {
				t := v.(time.Time)
				*dst = &t
			}
		}
	}
	setStrPtr := func(dst **string, key string) {
		if v, ok := updates[key]; ok {
			s := v.(string)
			*dst = &s
		}
	}

	setBool(&m.StudentWaterBaptismCompleted, "student_water_baptism_completed")
	setTimePtr(&m.StudentWaterBaptismDate, "student_water_baptism_date")
	setStrPtr(&m.StudentWaterBaptismNotes, "student_water_baptism_notes")
	setBool(&m.StudentHolyGhostCompleted, "student_holy_ghost_completed")
	setTimePtr(&m.StudentHolyGhostDate, "student_holy_ghost_date")
	setStrPtr(&m.StudentHolyGhostNotes, "student_holy_ghost_notes")
	setTimePtr(&m.StudentCompletedAt, "student_completed_at")
	if v, ok := updates["student_assigned_teacher_id"]; ok {
		id := v.(uuid.UUID)
		m.StudentAssignedTeacherID = &id
	}
	if v, ok := updates["student_first_steps"]; ok {
		m.StudentFirstSteps = v.(datatypes.JSON)
	}
	if v, ok := updates["student_updated_at"]; ok {
		m.StudentUpdatedAt = v.(time.Time)
	}
	cp := *m
	return &cp, nil
}

func newTestStudentService(repo *fakeStudentRepo, at time.Time) *StudentService {
	svc := NewStudentService(repo)
	svc.now = func() time.Time { return at }
	return svc
}

func TestStudentCreateInitializesJourney(t *testing.T) {
	repo := newFakeStudentRepo()
	stamp := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestStudentService(repo, stamp)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, churchID, m.StudentChurchID)
	assert.Equal(t, stamp, m.StudentStartedAt)
	assert.Equal(t, stamp, m.StudentCreatedAt)
	assert.Equal(t, stamp, m.StudentUpdatedAt)
	assert.False(t, m.StudentWaterBaptismCompleted)
	assert.False(t, m.StudentHolyGhostCompleted)

	steps := m.FirstSteps()
	require.Len(t, steps, 8)
	for i, def := range model.FirstStepDefs {
		assert.Equal(t, def.Key, steps[i].StepKey)
		assert.Equal(t, def.Name, steps[i].StepName)
		assert.False(t, steps[i].Started)
		assert.False(t, steps[i].Completed)
		assert.Nil(t, steps[i].StartedAt)
		assert.Nil(t, steps[i].CompletedAt)
	}
}

func TestStudentCreateHonorsExplicitStart(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	started := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	m, err := svc.Create(context.Background(), uuid.New(), &dto.CreateStudentRequest{
		StudentUserID:    uuid.New(),
		StudentStartedAt: &started,
	})
	require.NoError(t, err)
	assert.Equal(t, started, m.StudentStartedAt)
}

func TestStudentGetScopedToChurch(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	churchA := uuid.New()
	m, err := svc.Create(context.Background(), churchA, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), m.StudentID, churchA)
	require.NoError(t, err)
	assert.Equal(t, m.StudentID, got.StudentID)

	_, err = svc.GetByID(context.Background(), m.StudentID, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestStudentMilestoneDateDefaultsToNow(t *testing.T) {
	repo := newFakeStudentRepo()
	stamp := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)
	svc := newTestStudentService(repo, stamp)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	got, err := svc.UpdateMilestone(context.Background(), m.StudentID, churchID, &dto.UpdateMilestoneRequest{
		Milestone: "water-baptism",
		Completed: true,
	})
	require.NoError(t, err)
	assert.True(t, got.StudentWaterBaptismCompleted)
	require.NotNil(t, got.StudentWaterBaptismDate)
	assert.Equal(t, stamp, *got.StudentWaterBaptismDate)
	assert.False(t, got.StudentHolyGhostCompleted)
}

func TestStudentMilestoneExplicitDateAndNotes(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, time.Now().UTC())

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	notes := "received at spring revival"
	got, err := svc.UpdateMilestone(context.Background(), m.StudentID, churchID, &dto.UpdateMilestoneRequest{
		Milestone: "holy-ghost",
		Completed: true,
		Date:      &date,
		Notes:     &notes,
	})
	require.NoError(t, err)
	assert.True(t, got.StudentHolyGhostCompleted)
	require.NotNil(t, got.StudentHolyGhostDate)
	assert.Equal(t, date, *got.StudentHolyGhostDate)
	require.NotNil(t, got.StudentHolyGhostNotes)
	assert.Equal(t, notes, *got.StudentHolyGhostNotes)
}

func TestStudentMilestoneUnknownName(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	_, err := svc.UpdateMilestone(context.Background(), uuid.New(), uuid.New(), &dto.UpdateMilestoneRequest{
		Milestone: "confirmation",
		Completed: true,
	})
	assert.True(t, helper.IsValidationErr(err))
	assert.Nil(t, repo.lastUpdate)
}

func TestStudentStepCompleteImpliesStarted(t *testing.T) {
	repo := newFakeStudentRepo()
	stamp := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestStudentService(repo, stamp)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	completed := true
	got, err := svc.UpdateStep(context.Background(), m.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey:   "scripture-memory",
		Completed: &completed,
	})
	require.NoError(t, err)

	steps := got.FirstSteps()
	for _, s := range steps {
		if s.StepKey == "scripture-memory" {
			assert.True(t, s.Started)
			assert.True(t, s.Completed)
			require.NotNil(t, s.StartedAt)
			require.NotNil(t, s.CompletedAt)
			assert.Equal(t, stamp, *s.CompletedAt)
		} else {
			assert.False(t, s.Started, "step %s should be untouched", s.StepKey)
			assert.False(t, s.Completed, "step %s should be untouched", s.StepKey)
		}
	}
}

func TestStudentStepUnknownKey(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	started := true
	_, err = svc.UpdateStep(context.Background(), m.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey: "mission-trip",
		Started: &started,
	})
	assert.True(t, helper.IsValidationErr(err))
}

func TestStudentStepUncompleteClearsTimestamp(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := newTestStudentService(repo, time.Now().UTC())

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	yes := true
	_, err = svc.UpdateStep(context.Background(), m.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey:   "small-group",
		Completed: &yes,
	})
	require.NoError(t, err)

	no := false
	got, err := svc.UpdateStep(context.Background(), m.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey:   "small-group",
		Completed: &no,
	})
	require.NoError(t, err)

	for _, s := range got.FirstSteps() {
		if s.StepKey == "small-group" {
			assert.False(t, s.Completed)
			assert.Nil(t, s.CompletedAt)
			assert.True(t, s.Started, "unmarking completion keeps the step started")
		}
	}
}

func TestStudentListFiltersByTeacher(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	churchID := uuid.New()
	teacherID := uuid.New()

	_, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID:            uuid.New(),
		StudentAssignedTeacherID: &teacherID,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{
		StudentUserID: uuid.New(),
	})
	require.NoError(t, err)

	rows, _, err := svc.ListByChurch(context.Background(), churchID, helper.Paging{Limit: 25}, repository.ListStudentsOptions{
		AssignedTeacherID: &teacherID,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, teacherID, *rows[0].StudentAssignedTeacherID)
}

func TestStudentStatsAggregation(t *testing.T) {
	repo := newFakeStudentRepo()
	stamp := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestStudentService(repo, stamp)

	churchID := uuid.New()
	other := uuid.New()

	a, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{StudentUserID: uuid.New()})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), churchID, &dto.CreateStudentRequest{StudentUserID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), other, &dto.CreateStudentRequest{StudentUserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.UpdateMilestone(context.Background(), a.StudentID, churchID, &dto.UpdateMilestoneRequest{
		Milestone: "water-baptism", Completed: true,
	})
	require.NoError(t, err)
	_, err = svc.UpdateMilestone(context.Background(), a.StudentID, churchID, &dto.UpdateMilestoneRequest{
		Milestone: "holy-ghost", Completed: true,
	})
	require.NoError(t, err)
	_, err = svc.UpdateMilestone(context.Background(), b.StudentID, churchID, &dto.UpdateMilestoneRequest{
		Milestone: "water-baptism", Completed: true,
	})
	require.NoError(t, err)

	yes := true
	_, err = svc.UpdateStep(context.Background(), a.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey: "new-convert-class", Completed: &yes,
	})
	require.NoError(t, err)
	_, err = svc.UpdateStep(context.Background(), b.StudentID, churchID, &dto.UpdateStepRequest{
		StepKey: "new-convert-class", Started: &yes,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), churchID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 2, stats.WaterBaptismCompleted)
	assert.Equal(t, 1, stats.HolyGhostCompleted)
	assert.Equal(t, 1, stats.BothMilestonesComplete)

	require.Len(t, stats.StepStats, 8)
	assert.Equal(t, "new-convert-class", stats.StepStats[0].StepKey)
	assert.Equal(t, 2, stats.StepStats[0].Started)
	assert.Equal(t, 1, stats.StepStats[0].Completed)
	for _, ss := range stats.StepStats[1:] {
		assert.Zero(t, ss.Started)
		assert.Zero(t, ss.Completed)
	}
}
