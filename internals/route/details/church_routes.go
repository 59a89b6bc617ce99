package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "disciplehub_backend/internals/features/churches/churches/route"
)

func ChurchRoutes(public, private, admin, owner fiber.Router, db *gorm.DB) {
	churchRoute.ChurchPublicRoutes(public, db)
	churchRoute.ChurchAdminRoutes(admin, db)
	churchRoute.ChurchOwnerRoutes(owner, db)
}
