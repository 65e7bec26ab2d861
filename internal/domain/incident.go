package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentStarted   IncidentStatus = "Started"
	IncidentCanceled  IncidentStatus = "Canceled"
	IncidentFinalized IncidentStatus = "Finalized"
)

// Canceled and Finalized are terminal.
func (s IncidentStatus) Terminal() bool {
	return s == IncidentCanceled || s == IncidentFinalized
}

type DataStatus string

const (
	DataIncomplete DataStatus = "Incomplete"
	DataComplete   DataStatus = "Complete"
)

type ExternalAssistance string

const (
	WithExternalSupport    ExternalAssistance = "With external support"
	WithoutExternalSupport ExternalAssistance = "Without external support"
)

type Incident struct {
	ID                 uuid.UUID          `json:"id"`
	DomainID           uuid.UUID          `json:"-"`
	DomainName         string             `json:"domain_name"`
	IncidentTypeID     uuid.UUID          `json:"-"`
	IncidentTypeName   string             `json:"incident_type_name"`
	ExternalAssistance ExternalAssistance `json:"external_assistance"`
	Details            json.RawMessage    `json:"details"`
	Status             IncidentStatus     `json:"status"`
	DataStatus         DataStatus         `json:"data_status"`
	LocationReference  string             `json:"location_as_string_reference"`
	Reference          string             `json:"reference"`
	Location           GeoPoint           `json:"location_point"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	FinalizedAt        *time.Time         `json:"finalized_at,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
}
