package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Order is a logistics order placed by a vendor account. Line items are
// persisted as a serialized JSON array rather than a child table; they are
// never queried or updated independently.
type Order struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Destination string          `db:"destination" json:"destination"`
	Products    json.RawMessage `db:"products" json:"products"`
	AccountID   uuid.UUID       `db:"account_id" json:"account_id"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// LineItem is one product entry embedded in an order.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// LineItems deserializes the embedded products array. A malformed or
// non-array value degrades to an empty list so display paths never fail on
// bad stored data.
func (o *Order) LineItems() []LineItem {
	var items []LineItem
	if err := json.Unmarshal(o.Products, &items); err != nil || items == nil {
		return []LineItem{}
	}
	return items
}
