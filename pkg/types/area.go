package types

import (
	"time"
)

// Area is a disaster-affected location. CEP is stored exactly as entered;
// digit-only normalization happens at the lookup boundary.
type Area struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	CEP  string `db:"cep" json:"cep"`

	City           *string `db:"city" json:"city,omitempty"`
	State          *string `db:"state" json:"state,omitempty"`
	Address        *string `db:"address" json:"address,omitempty"`
	DisasterType   *string `db:"disaster_type" json:"disasterType,omitempty"`
	PriorityLevel  *int    `db:"priority_level" json:"priorityLevel,omitempty"`
	ImmediateNeeds *string `db:"immediate_needs" json:"immediateNeeds,omitempty"`

	// Map placement only.
	Latitude  *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `db:"longitude" json:"longitude,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
