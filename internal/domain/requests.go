package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateDomainRequest struct {
	Name           string `json:"domain_name" validate:"required,max=255"`
	AdminCode      string `json:"admin_alias" validate:"omitempty,max=255"`
	SupervisorCode string `json:"supervisor_alias" validate:"omitempty,max=255"`
	ResourceCode   string `json:"resource_alias" validate:"omitempty,max=255"`
}

type CreateIncidentRequest struct {
	DomainName         string             `json:"domain_name" validate:"required,max=255"`
	IncidentTypeName   string             `json:"incident_type_name" validate:"required,max=255"`
	ExternalAssistance ExternalAssistance `json:"external_assistance" validate:"assistance"`
	Details            json.RawMessage    `json:"details"`
	LocationReference  string             `json:"location_as_string_reference" validate:"max=255"`
	Reference          string             `json:"reference" validate:"max=255"`
	Location           GeoPoint           `json:"location_point" validate:"required"`
}

type ListIncidentsRequest struct {
	IncidentTypeName   string `json:"incident_type_name"`
	ExternalAssistance string `json:"external_assistance"`
	Status             string `json:"status"`
	DataStatus         string `json:"data_status"`
	Page               int    `json:"page" validate:"min=0"`
	Limit              int    `json:"limit" validate:"min=0,max=100"`
}

type SetExternalAssistanceRequest struct {
	ExternalAssistance ExternalAssistance `json:"external_assistance" validate:"required,assistance"`
}

type ValidateDetailsRequest struct {
	Details json.RawMessage `json:"details" validate:"required"`
}

type JoinIncidentRequest struct {
	ContainerResourceID *uuid.UUID `json:"container_resource_id"`
}

type CreateMapPointRequest struct {
	Location   GeoPoint  `json:"location" validate:"required"`
	Comment    string    `json:"comment" validate:"required,max=255"`
	ObservedAt time.Time `json:"time_created" validate:"required"`
}

type CreateTrackPointRequest struct {
	Location   GeoPoint  `json:"location" validate:"required"`
	ObservedAt time.Time `json:"time_created" validate:"required"`
}
