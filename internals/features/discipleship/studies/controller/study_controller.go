package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/studies/dto"
	"disciplehub_backend/internals/features/discipleship/studies/service"
	helper "disciplehub_backend/internals/helpers"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

type StudyController struct {
	Service  *service.StudyService
	Validate *validator.Validate
}

func NewStudyController(svc *service.StudyService) *StudyController {
	return &StudyController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// POST /studies
func (ctrl *StudyController) Create(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	var body dto.CreateStudyRequest
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
	return helper.JsonCreated(c, "Bible study created successfully", dto.ToStudyResponse(m))
}

// GET /studies/:id (with lessons)
func (ctrl *StudyController) GetByID(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study id")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id, churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToStudyResponse(m))
}

// GET /studies?limit=&cursor=
func (ctrl *StudyController) List(c *fiber.Ctx) error {
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
		pagination = helper.BuildPagination(paging.Limit, len(rows), hasMore, last.StudyCreatedAt, last.StudyID)
	}
	return helper.JsonList(c, dto.ToStudyResponses(rows), pagination)
}

// GET /students/:student_id/studies
func (ctrl *StudyController) ListByStudent(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	rows, err := ctrl.Service.ListByStudent(c.UserContext(), studentID, churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, dto.ToStudyResponses(rows), nil)
}

// PATCH /studies/:id
func (ctrl *StudyController) Update(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study id")
	}

	var body dto.UpdateStudyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.Update(c.UserContext(), id, churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Study updated successfully", dto.ToStudyResponse(m))
}

// PATCH /studies/:id/status
func (ctrl *StudyController) UpdateStatus(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study id")
	}

	var body dto.UpdateStudyStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.UpdateStatus(c.UserContext(), id, churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Study status updated successfully", dto.ToStudyResponse(m))
}

// DELETE /studies/:id
func (ctrl *StudyController) Delete(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid study id")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id, churchID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Study deleted successfully", nil)
}

// PATCH /lessons/:lesson_id/status
func (ctrl *StudyController) UpdateLessonStatus(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	lessonID, err := uuid.Parse(c.Params("lesson_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	var body dto.UpdateLessonStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.UpdateLessonStatus(c.UserContext(), lessonID, churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Lesson status updated successfully", dto.ToLessonResponse(m))
}
