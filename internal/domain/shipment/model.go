package shipment

import (
	"time"

	"github.com/google/uuid"
)

// Shipment is a delivery window for an order. Order and vehicle links are
// optional; a shipment can be scheduled before either is assigned.
type Shipment struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Destination string     `db:"destination" json:"destination"`
	Start       time.Time  `db:"start" json:"start"`
	End         time.Time  `db:"end" json:"end"`
	Description string     `db:"description" json:"description"`
	OrderID     *uuid.UUID `db:"order_id" json:"order_id,omitempty"`
	VehicleID   *uuid.UUID `db:"vehicle_id" json:"vehicle_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
