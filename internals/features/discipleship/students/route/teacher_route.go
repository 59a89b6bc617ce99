package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/features/discipleship/students/controller"
	"disciplehub_backend/internals/features/discipleship/students/repository"
	"disciplehub_backend/internals/features/discipleship/students/service"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

// StudentTeacherRoutes: discipleship tracking (teacher and above).
func StudentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(
		service.NewStudentService(repository.NewStudentRepository(db)),
	)

	students := r.Group("/students",
		featuresMiddleware.IsTeacherOrAbove("student tracking"))
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/stats", ctrl.Stats)
	students.Get("/:id", ctrl.GetByID)
	students.Patch("/:id", ctrl.Update)
	students.Patch("/:id/milestone", ctrl.UpdateMilestone)
	students.Patch("/:id/step", ctrl.UpdateStep)
}
