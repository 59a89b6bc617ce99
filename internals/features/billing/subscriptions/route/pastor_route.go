package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"disciplehub_backend/internals/features/billing/subscriptions/controller"
	"disciplehub_backend/internals/features/billing/subscriptions/repository"
	"disciplehub_backend/internals/features/billing/subscriptions/service"
	churchRepo "disciplehub_backend/internals/features/churches/churches/repository"
	featuresMiddleware "disciplehub_backend/internals/middlewares/features"
)

// SubscriptionPastorRoutes: tier upgrades (pastor only).
func SubscriptionPastorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := newController(db)

	subs := r.Group("/subscriptions",
		featuresMiddleware.IsPastor("billing"))
	subs.Post("/checkout", ctrl.CreateCheckout)
	subs.Get("/", ctrl.List)
	subs.Get("/:id", ctrl.GetByID)
}

// SubscriptionWebhookRoutes: midtrans notification callback, mounted
// outside the auth groups.
func SubscriptionWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	r.Post("/payments/midtrans/notification", ctrl.HandleNotification)
}

func newController(db *gorm.DB) *controller.SubscriptionController {
	return controller.NewSubscriptionController(
		service.NewSubscriptionService(
			repository.NewSubscriptionRepository(db),
			churchRepo.NewChurchRepository(db),
		),
	)
}
