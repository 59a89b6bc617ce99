package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/features/users/users/controller"
	"disciplehub_backend/internals/features/users/users/repository"
	"disciplehub_backend/internals/features/users/users/service"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

// UserAdminRoutes: member administration within the active church.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(
		service.NewUserService(repository.NewUserRepository(db)),
	)

	users := r.Group("/users",
		featuresMiddleware.IsManagerOrAbove("member administration"))
	users.Post("/", ctrl.Create)
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Patch("/:id", ctrl.Update)
}
