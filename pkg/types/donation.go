package types

import (
	"time"
)

// Donation is a registered contribution of goods. Quantity is validated > 0
// at creation time only.
type Donation struct {
	ID          string  `db:"id" json:"id"`
	Description string  `db:"description" json:"description"`
	Quantity    float64 `db:"quantity" json:"quantity"`
	AreaID      *string `db:"area_id" json:"areaId"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
