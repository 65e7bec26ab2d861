package domain

import (
	"time"

	"github.com/google/uuid"
)

// MapPoint is an annotated geographic observation. Append-only.
type MapPoint struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   uuid.UUID `json:"incident_id"`
	AssignmentID uuid.UUID `json:"-"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Location     GeoPoint  `json:"location"`
	Comment      string    `json:"comment"`
	ObservedAt   time.Time `json:"collected_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// TrackPoint is a raw position sample. Append-only.
type TrackPoint struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   uuid.UUID `json:"incident_id"`
	AssignmentID uuid.UUID `json:"-"`
	ResourceID   uuid.UUID `json:"resource_id"`
	Location     GeoPoint  `json:"location"`
	ObservedAt   time.Time `json:"collected_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type PointFilter struct {
	ResourceID       *uuid.UUID
	TimedeltaSeconds int // rolling window from now; 0 means no window
}
