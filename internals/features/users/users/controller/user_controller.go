package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/features/users/users/dto"
	"disciplehub_backend/internals/features/users/users/service"
	helper "disciplehub_backend/internals/helpers"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

type UserController struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// POST /users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Create(c.UserContext(), churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "User created successfully", dto.ToUserResponse(m))
}

// GET /users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id, churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToUserResponse(m))
}

// GET /users?limit=&cursor=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	rows, hasMore, err := ctrl.Service.ListByChurch(c.UserContext(), churchID, paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	pagination := helper.BuildPagination(paging.Limit, len(rows), false, time.Time{}, uuid.Nil)
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		pagination = helper.BuildPagination(paging.Limit, len(rows), hasMore, last.UserCreatedAt, last.UserID)
	}
	return helper.JsonList(c, dto.ToUserResponses(rows), pagination)
}

// PATCH /users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, churchID, helperAuth.GetChurchRole(c), &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "User updated successfully", dto.ToUserResponse(m))
}
