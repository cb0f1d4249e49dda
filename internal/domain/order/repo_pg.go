package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, destination, products, account_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var products []byte
	err := row.Scan(&o.ID, &o.Destination, &products, &o.AccountID, &o.CreatedAt, &o.UpdatedAt)
	o.Products = products
	return &o, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	return scanOrder(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM orders WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, o *Order) error {
	o.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO orders (id, destination, products, account_id)
		VALUES ($1, $2, $3, $4)`,
		o.ID, o.Destination, o.Products, o.AccountID)
	return err
}

func (r *repoPG) Update(ctx context.Context, o *Order) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET destination = $2, products = $3, updated_at = NOW()
		WHERE id = $1`,
		o.ID, o.Destination, o.Products)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", o.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}
