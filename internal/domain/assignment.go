package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a Resource to an Incident. It is closed by setting
// ExitedAt, never deleted.
type Assignment struct {
	ID                  uuid.UUID  `json:"id"`
	IncidentID          uuid.UUID  `json:"incident_id"`
	ResourceID          uuid.UUID  `json:"resource_id"`
	ContainerResourceID *uuid.UUID `json:"container_resource_id,omitempty"`
	ExitedAt            *time.Time `json:"exited_from_incident_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (a *Assignment) Active() bool { return a.ExitedAt == nil }

// AssignmentListItem joins the assignment row with its resource for
// filtered listings.
type AssignmentListItem struct {
	Assignment
	Resource Resource `json:"resource"`
}

type AssignmentFilter struct {
	Name             string `json:"name,omitempty"`
	TypeName         string `json:"type_name,omitempty"`
	ResourceActive   *bool  `json:"is_active,omitempty"`
	AbleToContain    *bool  `json:"is_able_to_contain_resources,omitempty"`
	WithoutContainer bool   `json:"without_container,omitempty"`
	CurrentlyJoined  *bool  `json:"currently_joined,omitempty"`
	Page             int    `json:"page"`
	Limit            int    `json:"limit"`
}

const (
	AssignmentsDefaultPageSize = 10
	AssignmentsMaxPageSize     = 10000
)
