package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a delivery vehicle in the logistics fleet.
type Vehicle struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	DriverName string    `db:"driver_name" json:"driver_name"`
	PlateNo    string    `db:"plate_no" json:"plate_no"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

const (
	StatusAvailable   = "AVAILABLE"
	StatusReserved    = "RESERVED"
	StatusInUse       = "IN_USE"
	StatusMaintenance = "MAINTENANCE"
)

var validStatuses = map[string]bool{
	StatusAvailable:   true,
	StatusReserved:    true,
	StatusInUse:       true,
	StatusMaintenance: true,
}
