package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subscriptionRoute "disciplehub_backend/internals/features/billing/subscriptions/route"
)

func BillingRoutes(public, admin fiber.Router, db *gorm.DB) {
	subscriptionRoute.SubscriptionPastorRoutes(admin, db)
	subscriptionRoute.SubscriptionWebhookRoutes(public, db)
}
