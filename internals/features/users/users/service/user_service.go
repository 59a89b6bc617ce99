package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"disciplehub_backend/internals/constants"
	"disciplehub_backend/internals/features/users/users/dto"
	"disciplehub_backend/internals/features/users/users/model"
	"disciplehub_backend/internals/features/users/users/repository"
	helper "disciplehub_backend/internals/helpers"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

type UserService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

func (s *UserService) Create(ctx context.Context, churchID uuid.UUID, req *dto.CreateUserRequest) (*model.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.UserChurchRole
	if role == "" {
		role = constants.RoleMember
	}

	now := s.now()
	m := &model.UserModel{
		UserChurchID:     churchID,
		UserFullName:     req.UserFullName,
		UserEmail:        req.UserEmail,
		UserPasswordHash: string(hash),
		UserChurchRole:   role,
		UserCreatedAt:    now,
		UserUpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *UserService) GetByID(ctx context.Context, id, churchID uuid.UUID) (*model.UserModel, error) {
	return s.repo.FindByID(ctx, id, churchID)
}

func (s *UserService) ListByChurch(ctx context.Context, churchID uuid.UUID, paging helper.Paging) ([]model.UserModel, bool, error) {
	return s.repo.ListByChurch(ctx, churchID, paging)
}

// Update merges non-nil fields. A role change is gated on the caller's
// own role via the pure CanAssignRole predicate.
func (s *UserService) Update(ctx context.Context, id, churchID uuid.UUID, callerRole string, req *dto.UpdateUserRequest) (*model.UserModel, error) {
	updates := map[string]any{
		"user_updated_at": s.now(),
	}
	if req.UserFullName != nil {
		updates["user_full_name"] = *req.UserFullName
	}
	if req.UserChurchRole != nil {
		if !helperAuth.CanAssignRole(callerRole, *req.UserChurchRole) {
			return nil, helper.NewValidationErr("user_church_role", "caller may not assign this role")
		}
		updates["user_church_role"] = *req.UserChurchRole
	}

	return s.repo.Update(ctx, id, churchID, updates)
}
