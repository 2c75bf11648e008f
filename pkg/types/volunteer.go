package types

import (
	"time"
)

// Volunteer is a registered helper. AreaID is nullable: a volunteer with no
// area assignment carries a nil AreaID and counts as "unlinked" everywhere.
type Volunteer struct {
	ID     string  `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	Phone  *string `db:"phone" json:"phone,omitempty"`
	Email  *string `db:"email" json:"email,omitempty"`
	Skills *string `db:"skills" json:"skills,omitempty"`
	AreaID *string `db:"area_id" json:"areaId"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
