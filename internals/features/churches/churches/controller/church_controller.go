package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/features/churches/churches/dto"
	"disciplehub_backend/internals/features/churches/churches/service"
	helper "disciplehub_backend/internals/helpers"
)

type ChurchController struct {
	Service  *service.ChurchService
	Validate *validator.Validate
}

func NewChurchController(svc *service.ChurchService) *ChurchController {
	return &ChurchController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// POST /churches
func (ctrl *ChurchController) Create(c *fiber.Ctx) error {
	var body dto.CreateChurchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Create(c.UserContext(), &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Church created successfully", dto.ToChurchResponse(m))
}

// GET /churches/:church_id
func (ctrl *ChurchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("church_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid church_id")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToChurchResponse(m))
}

// GET /churches/slug/:slug
func (ctrl *ChurchController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	m, err := ctrl.Service.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToChurchResponse(m))
}

// GET /churches?limit=&cursor=
func (ctrl *ChurchController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	rows, hasMore, err := ctrl.Service.List(c.UserContext(), paging)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	pagination := helper.BuildPagination(paging.Limit, len(rows), false, time.Time{}, uuid.Nil)
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		pagination = helper.BuildPagination(paging.Limit, len(rows), hasMore, last.ChurchCreatedAt, last.ChurchID)
	}
	return helper.JsonList(c, dto.ToChurchResponses(rows), pagination)
}

// PATCH /churches/:church_id
func (ctrl *ChurchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("church_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid church_id")
	}

	var body dto.UpdateChurchRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Church updated successfully", dto.ToChurchResponse(m))
}

// DELETE /churches/:church_id
func (ctrl *ChurchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("church_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid church_id")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Church deleted successfully", nil)
}
