package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/features/discipleship/studies/controller"
	"disciplehub_backend/internals/features/discipleship/studies/repository"
	"disciplehub_backend/internals/features/discipleship/studies/service"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

// StudyTeacherRoutes: bible study lifecycle (teacher and above).
func StudyTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudyController(
		service.NewStudyService(repository.NewStudyRepository(db)),
	)

	guard := featuresMiddleware.IsTeacherOrAbove("bible studies")

	studies := r.Group("/studies", guard)
	studies.Post("/", ctrl.Create)
	studies.Get("/", ctrl.List)
	studies.Get("/:id", ctrl.GetByID)
	studies.Patch("/:id", ctrl.Update)
	studies.Patch("/:id/status", ctrl.UpdateStatus)
	studies.Delete("/:id", ctrl.Delete)

	r.Get("/students/:student_id/studies", guard, ctrl.ListByStudent)
	r.Patch("/lessons/:lesson_id/status", guard, ctrl.UpdateLessonStatus)
}
