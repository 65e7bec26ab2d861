package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
)

type notificationTrigger struct {
	queue       PushQueue
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewNotificationTrigger(queue PushQueue, broadcaster Broadcaster, logger *slog.Logger) NotificationTrigger {
	return &notificationTrigger{
		queue:       queue,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (n *notificationTrigger) NotifyFinalized(ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID) {
	n.notify(ctx, incidentID, resourceIDs, domain.EventIncidentFinalized, "Incident finalized")
}

func (n *notificationTrigger) NotifyCancelled(ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID) {
	n.notify(ctx, incidentID, resourceIDs, domain.EventIncidentCancelled, "Incident cancelled")
}

// notify fans out one push per resource and publishes a lifecycle
// event. A failure for one resource must not block the rest.
func (n *notificationTrigger) notify(ctx context.Context, incidentID uuid.UUID, resourceIDs []uuid.UUID, eventType domain.EventType, title string) {
	now := time.Now().UTC()
	for _, resourceID := range resourceIDs {
		err := n.queue.Enqueue(ctx, domain.PushNotification{
			ResourceID: resourceID,
			IncidentID: incidentID,
			Title:      title,
			Body:       "Incident " + incidentID.String() + " is no longer active",
			QueuedAt:   now,
		})
		if err != nil {
			n.logger.Error("push enqueue failed",
				slog.String("incident_id", incidentID.String()),
				slog.String("resource_id", resourceID.String()),
				slog.Any("error", err),
			)
		}
	}

	err := n.broadcaster.Publish(ctx, domain.IncidentEvent{
		Type:       eventType,
		IncidentID: incidentID,
	})
	if err != nil {
		n.logger.Error("broadcast publish failed",
			slog.String("event", string(eventType)),
			slog.String("incident_id", incidentID.String()),
			slog.Any("error", err),
		)
	}
}
