package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disciplehub_backend/internals/features/churches/churches/dto"
	"disciplehub_backend/internals/features/churches/churches/model"
	helper "disciplehub_backend/internals/helpers"
)

type fakeChurchRepo struct {
	churches   map[uuid.UUID]*model.ChurchModel
	lastUpdate map[string]any
}

func newFakeChurchRepo() *fakeChurchRepo {
	return &fakeChurchRepo{churches: make(map[uuid.UUID]*model.ChurchModel)}
}

func (f *fakeChurchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ChurchModel, error) {
	m, ok := f.churches[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeChurchRepo) FindBySlug(_ context.Context, slug string) (*model.ChurchModel, error) {
	for _, m := range f.churches {
		if strings.EqualFold(m.ChurchSlug, slug) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, helper.ErrNotFound
}

func (f *fakeChurchRepo) List(_ context.Context, paging helper.Paging) ([]model.ChurchModel, bool, error) {
	var out []model.ChurchModel
	for _, m := range f.churches {
		out = append(out, *m)
	}
	return out, false, nil
}

func (f *fakeChurchRepo) Create(_ context.Context, m *model.ChurchModel) error {
	m.ChurchID = uuid.New()
	cp := *m
	f.churches[m.ChurchID] = &cp
	return nil
}

func (f *fakeChurchRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (*model.ChurchModel, error) {
	m, ok := f.churches[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	f.lastUpdate = updates
	if v, ok := updates["church_name"]; ok {
		m.ChurchName = v.(string)
	}
	if v, ok := updates["church_timezone"]; ok {
		m.ChurchTimezone = v.(string)
	}
	if v, ok := updates["church_subscription_tier"]; ok {
		m.ChurchSubscriptionTier = v.(string)
	}
	if v, ok := updates["church_updated_at"]; ok {
		m.ChurchUpdatedAt = v.(time.Time)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeChurchRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.churches[id]; !ok {
		return helper.ErrNotFound
	}
	delete(f.churches, id)
	return nil
}

func (f *fakeChurchRepo) UniqueSlug(_ context.Context, base string) (string, error) {
	slug := helper.GenerateSlug(base)
	if slug == "" {
		slug = "church"
	}
	candidate := slug
	for i := 2; ; i++ {
		if _, err := f.FindBySlug(context.Background(), candidate); err != nil {
			return candidate, nil
		}
		candidate = slug + "-" + string(rune('0'+i))
	}
}

func TestChurchCreateDefaults(t *testing.T) {
	repo := newFakeChurchRepo()
	stamp := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	svc := NewChurchService(repo)
	svc.now = func() time.Time { return stamp }

	m, err := svc.Create(context.Background(), &dto.CreateChurchRequest{
		ChurchName: "First Pentecostal Church",
	})
	require.NoError(t, err)

	assert.Equal(t, "first-pentecostal-church", m.ChurchSlug)
	assert.Equal(t, "free", m.ChurchSubscriptionTier)
	assert.Equal(t, "UTC", m.ChurchTimezone)
	assert.Equal(t, "sunday", m.ChurchWeekStartDay)
	assert.Equal(t, stamp, m.ChurchCreatedAt)
	assert.Equal(t, stamp, m.ChurchUpdatedAt)

	var curricula []string
	require.NoError(t, json.Unmarshal(m.ChurchEnabledCurricula, &curricula))
	assert.Empty(t, curricula)
}

func TestChurchCreateSlugCollision(t *testing.T) {
	repo := newFakeChurchRepo()
	svc := NewChurchService(repo)

	first, err := svc.Create(context.Background(), &dto.CreateChurchRequest{ChurchName: "Grace Tabernacle"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), &dto.CreateChurchRequest{ChurchName: "Grace Tabernacle"})
	require.NoError(t, err)

	assert.Equal(t, "grace-tabernacle", first.ChurchSlug)
	assert.NotEqual(t, first.ChurchSlug, second.ChurchSlug)
	assert.True(t, strings.HasPrefix(second.ChurchSlug, "grace-tabernacle-"))
}

func TestChurchUpdatePartial(t *testing.T) {
	repo := newFakeChurchRepo()
	svc := NewChurchService(repo)

	m, err := svc.Create(context.Background(), &dto.CreateChurchRequest{ChurchName: "Lighthouse Assembly"})
	require.NoError(t, err)

	tz := "America/Chicago"
	got, err := svc.Update(context.Background(), m.ChurchID, &dto.UpdateChurchRequest{
		ChurchTimezone: &tz,
	})
	require.NoError(t, err)

	assert.Equal(t, tz, got.ChurchTimezone)
	assert.Equal(t, "Lighthouse Assembly", got.ChurchName)
	assert.Len(t, repo.lastUpdate, 2)
	assert.Contains(t, repo.lastUpdate, "church_timezone")
	assert.Contains(t, repo.lastUpdate, "church_updated_at")
}

func TestChurchUpdateMissing(t *testing.T) {
	repo := newFakeChurchRepo()
	svc := NewChurchService(repo)

	name := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateChurchRequest{ChurchName: &name})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestChurchGetBySlugCaseInsensitive(t *testing.T) {
	repo := newFakeChurchRepo()
	svc := NewChurchService(repo)

	m, err := svc.Create(context.Background(), &dto.CreateChurchRequest{ChurchName: "New Life Church"})
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), "NEW-LIFE-CHURCH")
	require.NoError(t, err)
	assert.Equal(t, m.ChurchID, got.ChurchID)
}

func TestChurchDelete(t *testing.T) {
	repo := newFakeChurchRepo()
	svc := NewChurchService(repo)

	m, err := svc.Create(context.Background(), &dto.CreateChurchRequest{ChurchName: "City Chapel"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), m.ChurchID))
	assert.ErrorIs(t, svc.Delete(context.Background(), m.ChurchID), helper.ErrNotFound)
}
