package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"disciplehub_backend/internals/features/billing/subscriptions/model"
	"disciplehub_backend/internals/features/billing/subscriptions/repository"
	churchRepo "disciplehub_backend/internals/features/churches/churches/repository"
	helper "disciplehub_backend/internals/helpers"
)

// Monthly price per tier. Free is not purchasable.
var tierPrices = map[string]int64{
	"standard": 150_000,
	"premium":  450_000,
}

type SubscriptionService struct {
	repo     repository.SubscriptionRepository
	churches churchRepo.ChurchRepository
	// snapToken is swappable in tests; defaults to the midtrans client.
	snapToken func(orderID string, amount int64, churchName string) (string, error)
	now       func() time.Time
}

func NewSubscriptionService(repo repository.SubscriptionRepository, churches churchRepo.ChurchRepository) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		churches:  churches,
		snapToken: GenerateSnapToken,
		now:       time.Now,
	}
}

// CreateCheckout opens a pending subscription and returns it with the
// Snap token the frontend needs to launch payment.
func (s *SubscriptionService) CreateCheckout(ctx context.Context, churchID uuid.UUID, tier string) (*model.ChurchSubscriptionModel, error) {
	amount, ok := tierPrices[tier]
	if !ok {
		return nil, helper.NewValidationErr("subscription_tier", "tier is not purchasable")
	}

	church, err := s.churches.FindByID(ctx, churchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m := &model.ChurchSubscriptionModel{
		SubscriptionChurchID:  churchID,
		SubscriptionTier:      tier,
		SubscriptionAmount:    amount,
		SubscriptionStatus:    model.SubscriptionStatusPending,
		SubscriptionOrderID:   fmt.Sprintf("sub-%s", uuid.New()),
		SubscriptionCreatedAt: now,
		SubscriptionUpdatedAt: now,
	}

	token, err := s.snapToken(m.SubscriptionOrderID, amount, church.ChurchName)
	if err != nil {
		return nil, err
	}
	m.SubscriptionSnapToken = &token

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SubscriptionService) GetByID(ctx context.Context, id, churchID uuid.UUID) (*model.ChurchSubscriptionModel, error) {
	return s.repo.FindByID(ctx, id, churchID)
}

func (s *SubscriptionService) ListByChurch(ctx context.Context, churchID uuid.UUID) ([]model.ChurchSubscriptionModel, error) {
	return s.repo.ListByChurch(ctx, churchID)
}

// HandleNotification applies a midtrans settlement to the subscription
// and, on success, promotes the church's tier.
func (s *SubscriptionService) HandleNotification(ctx context.Context, orderID, transactionStatus string) error {
	sub, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if sub.SubscriptionStatus != model.SubscriptionStatusPending {
		// already settled; notifications may repeat
		return nil
	}

	now := s.now()
	switch transactionStatus {
	case "settlement", "capture":
		if err := s.repo.Update(ctx, sub.SubscriptionID, map[string]any{
			"subscription_status":     model.SubscriptionStatusPaid,
			"subscription_updated_at": now,
		}); err != nil {
			return err
		}
		_, err = s.churches.Update(ctx, sub.SubscriptionChurchID, map[string]any{
			"church_subscription_tier": sub.SubscriptionTier,
			"church_updated_at":        now,
		})
		return err
	case "deny", "cancel", "expire", "failure":
		return s.repo.Update(ctx, sub.SubscriptionID, map[string]any{
			"subscription_status":     model.SubscriptionStatusFailed,
			"subscription_updated_at": now,
		})
	default:
		// pending and other interim statuses: nothing to apply
		return nil
	}
}
