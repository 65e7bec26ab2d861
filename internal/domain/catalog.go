package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DomainConfig scopes incident types and resource types for a tenant.
// The application allows exactly one active domain.
type DomainConfig struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"domain_name"`
	AdminCode      string    `json:"admin_alias,omitempty"`
	SupervisorCode string    `json:"supervisor_alias,omitempty"`
	ResourceCode   string    `json:"resource_alias,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type IncidentType struct {
	ID            uuid.UUID       `json:"id"`
	DomainID      uuid.UUID       `json:"-"`
	Name          string          `json:"name"`
	DetailsSchema json.RawMessage `json:"details_schema"`
}

type ResourceType struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	AbleToContainResources bool      `json:"is_able_to_contain_resources"`
}

// Resource is a field-deployable entity (person or vehicle). Active
// mirrors the owning user's is_active flag.
type Resource struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Active    bool         `json:"is_active"`
	Type      ResourceType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

// DomainSnapshot is the denormalized config tree served to clients and
// rebuilt explicitly after any catalog write.
type DomainSnapshot struct {
	Domain        DomainConfig   `json:"domain"`
	IncidentTypes []IncidentType `json:"incident_types"`
	ResourceTypes []ResourceType `json:"resource_types"`
	RebuiltAt     time.Time      `json:"rebuilt_at"`
}
