package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a supply item the hospital stocks. Products are not owned by
// an account; creation takes a vendor account id for an existence check
// only.
type Product struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	Stocks    float64   `db:"stocks" json:"stocks"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
