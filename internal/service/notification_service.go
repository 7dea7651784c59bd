package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/motor-mingle/server/internal/config"
	"github.com/motor-mingle/server/internal/events"
)

// NotificationService reacts to marketplace events with outbound notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventListingCreated, n.handleListingCreated)
	n.dispatcher.Subscribe(events.EventListingSold, n.handleListingSold)
	n.dispatcher.Subscribe(events.EventSellerVerificationChanged, n.handleSellerVerificationChanged)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("user_id", event.SubjectID), zap.String("email", event.ActorEmail))
	n.sendEmail(ctx, event, event.ActorEmail)
	return nil
}

func (n *NotificationService) handleListingCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ListingCreated", zap.String("listing_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleListingSold(ctx context.Context, event events.Event) error {
	n.logger.Info("ListingSold", zap.String("listing_id", event.SubjectID), zap.Any("payload", event.Payload))
	if p, ok := event.Payload.(events.ListingSoldPayload); ok {
		n.sendEmail(ctx, event, p.SellerEmail)
	}
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleSellerVerificationChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("SellerVerificationChanged",
		zap.String("seller_id", event.SubjectID),
		zap.String("admin", event.ActorEmail),
		zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) sendEmail(_ context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || to == "" {
		return
	}
	n.logger.Debug("sendEmail",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhook(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhook",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
