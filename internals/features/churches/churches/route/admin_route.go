package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/features/churches/churches/controller"
	"disciplehub_backend/internals/features/churches/churches/repository"
	"disciplehub_backend/internals/features/churches/churches/service"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

// ChurchAdminRoutes: church self-management (manager and above).
func ChurchAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(
		service.NewChurchService(repository.NewChurchRepository(db)),
	)

	churches := r.Group("/churches")
	churches.Get("/:church_id",
		featuresMiddleware.RequirePathScopeMatch(),
		ctrl.GetByID)
	churches.Patch("/:church_id",
		featuresMiddleware.RequirePathScopeMatch(),
		featuresMiddleware.IsManagerOrAbove("church settings"),
		ctrl.Update)
}

// ChurchOwnerRoutes: platform-level tenant provisioning.
func ChurchOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(
		service.NewChurchService(repository.NewChurchRepository(db)),
	)

	churches := r.Group("/churches")
	churches.Post("/", ctrl.Create)
	churches.Get("/", ctrl.List)
	churches.Delete("/:church_id", ctrl.Delete)
}

// ChurchPublicRoutes: slug lookup for the public landing pages.
func ChurchPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChurchController(
		service.NewChurchService(repository.NewChurchRepository(db)),
	)

	r.Get("/churches/slug/:slug", ctrl.GetBySlug)
}
