package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/configs"
	routeDetails "disciplehub_backend/internals/route/details"

	churchkuMiddleware "disciplehub_backend/internals/middlewares/auth_church"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	BaseRoutes(app, cfg)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	public := app.Group("/api/public")

	// PRIVATE (per church, any member)
	private := app.Group("/api/u",
		churchkuMiddleware.AuthJWT(churchkuMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ADMIN (per church, role-gated per route)
	admin := app.Group("/api/a",
		churchkuMiddleware.AuthJWT(churchkuMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
		featuresMiddleware.RequirePathScopeMatch(),
	)

	// OWNER (platform-global)
	owner := app.Group("/api/o",
		churchkuMiddleware.AuthJWT(churchkuMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsOwnerGlobal(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Church routes...")
	routeDetails.ChurchRoutes(public, private, admin, owner, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(admin, db)

	log.Println("[INFO] Mounting Discipleship routes...")
	routeDetails.DiscipleshipRoutes(admin, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingRoutes(public, admin, db)
}
