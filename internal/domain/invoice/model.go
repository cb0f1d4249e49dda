package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is a billing record issued against a vendor account. Amounts are
// in PHP.
type Invoice struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Amount    float64   `db:"amount" json:"amount"`
	Status    string    `db:"status" json:"status"`
	AccountID uuid.UUID `db:"account_id" json:"account_id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
