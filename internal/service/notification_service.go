package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/shift-service/internal/config"
	"github.com/spec-kit/shift-service/internal/domain"
	"github.com/spec-kit/shift-service/internal/events"
	"github.com/spec-kit/shift-service/internal/repository"
)

// NotificationService turns domain events into in-app notifications
// and stub email/webhook deliveries. The import pipeline itself never
// triggers side effects; everything flows through events.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	cfg           config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
		cfg:           cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventShiftCreated, n.handleShiftCreated)
	n.dispatcher.Subscribe(events.EventShiftDeleted, n.handleShiftDeleted)
	n.dispatcher.Subscribe(events.EventImportCompleted, n.handleImportCompleted)
}

// ListForUser returns the caller's notification feed.
func (n *NotificationService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	return n.notifications.ListByUser(ctx, userID, limit, offset)
}

// MarkRead marks one notification as read for the caller.
func (n *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return n.notifications.MarkRead(ctx, id, userID)
}

func (n *NotificationService) handleShiftCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ShiftCreatedPayload)
	if !ok {
		return nil
	}
	notification := &domain.Notification{
		UserID: payload.UserID,
		Kind:   domain.NotificationShiftAssigned,
		Message: fmt.Sprintf("You were scheduled for %s %s-%s (%s, %s)",
			payload.Date, payload.StartTime, payload.EndTime, payload.Role, payload.Department),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to store notification", zap.Error(err))
		return err
	}
	n.sendEmailStub(event)
	return nil
}

func (n *NotificationService) handleShiftDeleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ShiftDeletedPayload)
	if !ok {
		return nil
	}
	notification := &domain.Notification{
		UserID:  payload.UserID,
		Kind:    domain.NotificationShiftCancelled,
		Message: fmt.Sprintf("Your shift on %s was cancelled", payload.Date),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to store notification", zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) handleImportCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ImportCompletedPayload)
	if !ok {
		return nil
	}
	notification := &domain.Notification{
		UserID: event.Actor.UserID,
		Kind:   domain.NotificationImportCompleted,
		Message: fmt.Sprintf("Import finished: %d of %d shifts created, %d failed",
			payload.Created, payload.Total, payload.Failed),
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to store notification", zap.Error(err))
		return err
	}
	n.sendWebhookStub(event)
	return nil
}

func (n *NotificationService) sendEmailStub(event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookStub(event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
