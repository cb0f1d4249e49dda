package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is the slice of an account's records the summarizer reads: the
// account's orders (each with its shipment, when one exists) and invoices,
// both in creation order.
type Activity struct {
	AccountID uuid.UUID
	Email     string
	Name      string
	Orders    []ActivityOrder
	Invoices  []ActivityInvoice
}

type ActivityOrder struct {
	ID          uuid.UUID
	Destination string
	Products    json.RawMessage
	Shipment    *ActivityShipment
}

type ActivityShipment struct {
	Destination string
	Start       time.Time
}

type ActivityInvoice struct {
	Amount float64
	Status string
}

const defaultQuery = "Summarize my current orders, shipments, and invoices."

const promptTemplate = `
You are a hospital logistics and finance assistant. Use only the context below to answer.

Context:
%s

User query:
%s

Instructions:
- If the user asks anything outside finance/logistics, say you can only help with those.
- Provide clear, specific responses based on the message context.
- Use PHP as the currency in any financial references.
`

// buildMessage concatenates the context sentences from the first order and
// first invoice. The sentence wording is part of the client contract and
// must not drift.
func buildMessage(a *Activity) string {
	var b strings.Builder
	if len(a.Orders) > 0 {
		order := a.Orders[0]
		b.WriteString("You currently have an order of " + productNames(order.Products) + ".")
		if order.Shipment != nil {
			fmt.Fprintf(&b, " It is already on shipment to %s, starting on %s.",
				order.Shipment.Destination, order.Shipment.Start.Format("1/2/2006"))
		}
	}
	if len(a.Invoices) > 0 {
		inv := a.Invoices[0]
		fmt.Fprintf(&b, " You currently have an invoice of PHP %.2f with status \"%s\".", inv.Amount, inv.Status)
	}
	if len(a.Orders) == 0 && len(a.Invoices) == 0 {
		return "You currently have no orders, shipments, or invoices."
	}
	return b.String()
}

// productNames renders the embedded line item names. A value that is not a
// JSON array collapses to the phrase "an order"; an item without a name
// becomes "a product".
func productNames(raw json.RawMessage) string {
	var items []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return "an order"
	}
	names := make([]string, len(items))
	for i, it := range items {
		if it.Name == "" {
			names[i] = "a product"
		} else {
			names[i] = it.Name
		}
	}
	return strings.Join(names, ", ")
}

func buildPrompt(message, query string) string {
	if query == "" {
		query = defaultQuery
	}
	return fmt.Sprintf(promptTemplate, message, query)
}
