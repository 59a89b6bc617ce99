package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/features/billing/subscriptions/dto"
	"disciplehub_backend/internals/features/billing/subscriptions/service"
	helper "disciplehub_backend/internals/helpers"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

type SubscriptionController struct {
	Service  *service.SubscriptionService
	Validate *validator.Validate
}

func NewSubscriptionController(svc *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// POST /subscriptions/checkout
func (ctrl *SubscriptionController) CreateCheckout(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	var body dto.CreateCheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := ctrl.Service.CreateCheckout(c.UserContext(), churchID, body.SubscriptionTier)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Checkout created successfully", dto.ToSubscriptionResponse(m))
}

// GET /subscriptions
func (ctrl *SubscriptionController) List(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}

	rows, err := ctrl.Service.ListByChurch(c.UserContext(), churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	out := make([]dto.SubscriptionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *dto.ToSubscriptionResponse(&rows[i]))
	}
	return helper.JsonList(c, out, nil)
}

// GET /subscriptions/:id
func (ctrl *SubscriptionController) GetByID(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subscription id")
	}

	m, err := ctrl.Service.GetByID(c.UserContext(), id, churchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToSubscriptionResponse(m))
}

// POST /payments/midtrans/notification (unauthenticated gateway webhook)
func (ctrl *SubscriptionController) HandleNotification(c *fiber.Ctx) error {
	var body dto.PaymentNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.Service.HandleNotification(c.UserContext(), body.OrderID, body.TransactionStatus); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Notification processed", nil)
}
