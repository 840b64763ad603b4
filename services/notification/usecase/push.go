package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// Permission returns the last known alert permission
func (uc *NotificationUC) Permission() models.PermissionState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.permission
}

// RequestPermission asks the alert surface once. A settled answer is
// returned as is; a denial is reported as ErrPermissionDenied.
func (uc *NotificationUC) RequestPermission(ctx context.Context) (models.PermissionState, error) {
	uc.mu.RLock()
	state := uc.permission
	uc.mu.RUnlock()

	if state == models.PermissionDefault {
		if uc.surface == nil {
			state = models.PermissionDenied
		} else {
			asked, err := uc.surface.RequestPermission(ctx)
			if err != nil {
				return models.PermissionDefault, fmt.Errorf("failed to request notification permission: %w", err)
			}
			state = asked
		}

		uc.mu.Lock()
		uc.permission = state
		uc.mu.Unlock()
		logger.Info("Notification permission settled", logger.String("state", string(state)))
	}

	if state == models.PermissionDenied {
		return state, fmt.Errorf("notifications are blocked: %w", models.ErrPermissionDenied)
	}
	return state, nil
}

// SubscribeToPush registers sub for alerts and announces it upstream with the
// application server key. Permission is requested first when still unset.
func (uc *NotificationUC) SubscribeToPush(ctx context.Context, sub models.PushSubscription) error {
	if sub.Endpoint == "" {
		return models.ErrInvalidSubscription
	}
	if _, err := uc.RequestPermission(ctx); err != nil {
		return err
	}

	uc.mu.Lock()
	stored := sub
	uc.subscription = &stored
	uc.mu.Unlock()

	logger.Info("Subscribed to push", logger.String("endpoint", sub.Endpoint))
	return emit(uc.gw.SubscribePush(models.PushSubscriptionRequest{
		UserID:         uc.userID,
		Subscription:   sub,
		ApplicationKey: uc.surface.ServerKey(),
	}), "push subscription")
}

// UnsubscribeFromPush drops the current subscription, if any
func (uc *NotificationUC) UnsubscribeFromPush() error {
	uc.mu.Lock()
	sub := uc.subscription
	uc.subscription = nil
	uc.mu.Unlock()

	if sub == nil {
		return nil
	}
	logger.Info("Unsubscribed from push", logger.String("endpoint", sub.Endpoint))
	return emit(uc.gw.UnsubscribePush(models.PushUnsubscribe{UserID: uc.userID, Endpoint: sub.Endpoint}), "push unsubscribe")
}

// CurrentSubscription returns the registered push subscription
func (uc *NotificationUC) CurrentSubscription() (models.PushSubscription, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.subscription == nil {
		return models.PushSubscription{}, false
	}
	return *uc.subscription, true
}
