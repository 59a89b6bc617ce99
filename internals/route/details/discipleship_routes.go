package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "disciplehub_backend/internals/features/discipleship/students/route"
	studyRoute "disciplehub_backend/internals/features/discipleship/studies/route"
)

func DiscipleshipRoutes(admin fiber.Router, db *gorm.DB) {
	studentRoute.StudentTeacherRoutes(admin, db)
	studyRoute.StudyTeacherRoutes(admin, db)
}
