package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the vendor identity owning orders and invoices. Registration
// happens in an external flow; this service only reads and removes accounts.
type Account struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
