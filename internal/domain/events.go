package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventMapPoint          EventType = "map_point"
	EventTrackPoint        EventType = "track_point"
	EventIncidentFinalized EventType = "incident_finalized"
	EventIncidentCancelled EventType = "incident_cancelled"
)

// IncidentEvent is broadcast to subscribers of the incident's channel.
type IncidentEvent struct {
	Type       EventType `json:"type"`
	IncidentID uuid.UUID `json:"incident_id"`
	Data       any       `json:"data,omitempty"`
}

// PushNotification is queued on lifecycle transitions and delivered
// best-effort by the push sender worker.
type PushNotification struct {
	ResourceID uuid.UUID `json:"resource_id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	QueuedAt   time.Time `json:"queued_at"`
}
