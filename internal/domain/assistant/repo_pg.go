package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) GetActivityByEmail(ctx context.Context, email string) (*Activity, error) {
	var a Activity
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name FROM account WHERE email = $1`, email).
		Scan(&a.AccountID, &a.Email, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadOrders(ctx, &a); err != nil {
		return nil, err
	}
	if err := r.loadInvoices(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// loadOrders fetches the account's orders oldest-first, each with its
// earliest shipment when one is linked.
func (r *repoPG) loadOrders(ctx context.Context, a *Activity) error {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.destination, o.products, s.destination, s."start"
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT destination, "start"
			FROM shipment
			WHERE order_id = o.id
			ORDER BY created_at ASC
			LIMIT 1
		) s ON true
		WHERE o.account_id = $1
		ORDER BY o.created_at ASC`, a.AccountID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var o ActivityOrder
		var products []byte
		var shDest *string
		var shStart *time.Time
		if err := rows.Scan(&o.ID, &o.Destination, &products, &shDest, &shStart); err != nil {
			return err
		}
		o.Products = products
		if shDest != nil && shStart != nil {
			o.Shipment = &ActivityShipment{Destination: *shDest, Start: *shStart}
		}
		a.Orders = append(a.Orders, o)
	}
	return rows.Err()
}

func (r *repoPG) loadInvoices(ctx context.Context, a *Activity) error {
	rows, err := r.pool.Query(ctx, `
		SELECT amount, status
		FROM invoice
		WHERE account_id = $1
		ORDER BY created_at ASC`, a.AccountID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var inv ActivityInvoice
		if err := rows.Scan(&inv.Amount, &inv.Status); err != nil {
			return err
		}
		a.Invoices = append(a.Invoices, inv)
	}
	return rows.Err()
}
