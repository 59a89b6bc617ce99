package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"disciplehub_backend/internals/constants"
	"disciplehub_backend/internals/features/users/users/dto"
	"disciplehub_backend/internals/features/users/users/model"
	helper "disciplehub_backend/internals/helpers"
)

type tenantKey struct {
	churchID uuid.UUID
	id       uuid.UUID
}

type fakeUserRepo struct {
	users      map[tenantKey]*model.UserModel
	lastUpdate map[string]any
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[tenantKey]*model.UserModel)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id, churchID uuid.UUID) (*model.UserModel, error) {
	m, ok := f.users[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeUserRepo) ListByChurch(_ context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.UserModel, bool, error) {
	var out []model.UserModel
	for k, m := range f.users {
		if k.churchID == churchID {
			out = append(out, *m)
		}
	}
	return out, false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, m *model.UserModel) error {
	for _, existing := range f.users {
		if existing.UserEmail == m.UserEmail {
			return helper.NewValidationErr("user_email", "email already registered")
		}
	}
	m.UserID = uuid.New()
	cp := *m
	f.users[tenantKey{m.UserChurchID, m.UserID}] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id, churchID uuid.UUID, updates map[string]any) (*model.UserModel, error) {
	m, ok := f.users[tenantKey{churchID, id}]
	if !ok {
		return nil, helper.ErrNotFound
	}
	f.lastUpdate = updates
	if v, ok := updates["user_full_name"]; ok {
		m.UserFullName = v.(string)
	}
	if v, ok := updates["user_church_role"]; ok {
		m.UserChurchRole = v.(string)
	}
	if v, ok := updates["user_updated_at"]; ok {
		m.UserUpdatedAt = v.(time.Time)
	}
	cp := *m
	return &cp, nil
}

func TestUserCreateDefaultsToMember(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateUserRequest{
		UserFullName: "Jordan Wells",
		UserEmail:    "jordan@example.com",
		UserPassword: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RoleMember, m.UserChurchRole)
	assert.Equal(t, churchID, m.UserChurchID)
	assert.NotEqual(t, "correct horse battery staple", m.UserPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(m.UserPasswordHash), []byte("correct horse battery staple")))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	churchID := uuid.New()
	_, err := svc.Create(context.Background(), churchID, &dto.CreateUserRequest{
		UserFullName: "A", UserEmail: "same@example.com", UserPassword: "password-one",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), churchID, &dto.CreateUserRequest{
		UserFullName: "B", UserEmail: "same@example.com", UserPassword: "password-two",
	})
	assert.True(t, helper.IsValidationErr(err))
}

func TestUserRoleChangeGatedOnCaller(t *testing.T) {
	tests := []struct {
		name       string
		callerRole string
		newRole    string
		allowed    bool
	}{
		{"manager promotes to teacher", constants.RoleManager, constants.RoleTeacher, true},
		{"manager cannot mint manager", constants.RoleManager, constants.RoleManager, false},
		{"pastor promotes to manager", constants.RolePastor, constants.RoleManager, true},
		{"teacher cannot assign roles", constants.RoleTeacher, constants.RoleMentor, false},
		{"member cannot assign roles", constants.RoleMember, constants.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewUserService(repo)

			churchID := uuid.New()
			m, err := svc.Create(context.Background(), churchID, &dto.CreateUserRequest{
				UserFullName: "Target User",
				UserEmail:    "target@example.com",
				UserPassword: "some-password",
			})
			require.NoError(t, err)

			got, err := svc.Update(context.Background(), m.UserID, churchID, tt.callerRole, &dto.UpdateUserRequest{
				UserChurchRole: &tt.newRole,
			})
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.newRole, got.UserChurchRole)
			} else {
				assert.True(t, helper.IsValidationErr(err))
			}
		})
	}
}

func TestUserUpdateScopedToChurch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	churchID := uuid.New()
	m, err := svc.Create(context.Background(), churchID, &dto.CreateUserRequest{
		UserFullName: "Scoped User",
		UserEmail:    "scoped@example.com",
		UserPassword: "some-password",
	})
	require.NoError(t, err)

	name := "Renamed"
	_, err = svc.Update(context.Background(), m.UserID, uuid.New(), constants.RolePastor, &dto.UpdateUserRequest{
		UserFullName: &name,
	})
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
