package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/features/discipleship/students/dto"
	"disciplehub_backend/internals/features/discipleship/students/repository"
	"disciplehub_backend/internals/features/discipleship/students/service"
	helper "disciplehub_backend/internals/helpers"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

type StudentController struct {
	Service  *service.StudentService
	Validate *validator.Validate
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// POST /students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	var body dto.CreateStudentRequest
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
	return helper.JsonCreated(c, "Student created successfully", dto.ToStudentResponse(m))
}

// GET /students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id, churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToStudentResponse(m))
}

// GET /students?limit=&cursor=&teacher_id=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var opts repository.ListStudentsOptions
	if raw := c.Query("teacher_id"); raw != "" {
		teacherID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
		opts.AssignedTeacherID = &teacherID
	}

	rows, hasMore, err := ctrl.Service.ListByChurch(c.UserContext(), churchID, paging, opts)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	pagination := helper.BuildPagination(paging.Limit, len(rows), false, time.Time{}, uuid.Nil)
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		pagination = helper.BuildPagination(paging.Limit, len(rows), hasMore, last.StudentCreatedAt, last.StudentID)
	}
	return helper.JsonList(c, dto.ToStudentResponses(rows), pagination)
}

// PATCH /students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.UpdateStudentRequest
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
	return helper.JsonOK(c, "Student updated successfully", dto.ToStudentResponse(m))
}

// PATCH /students/:id/milestone
func (ctrl *StudentController) UpdateMilestone(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.UpdateMilestoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.UpdateMilestone(c.UserContext(), id, churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Milestone updated successfully", dto.ToStudentResponse(m))
}

// PATCH /students/:id/step
func (ctrl *StudentController) UpdateStep(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.UpdateStepRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.UpdateStep(c.UserContext(), id, churchID, &body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Step updated successfully", dto.ToStudentResponse(m))
}

// GET /students/stats
func (ctrl *StudentController) Stats(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	stats, err := ctrl.Service.Stats(c.UserContext(), churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", stats)
}
