package shipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

// "end" is reserved in Postgres, so both window columns stay quoted.
const cols = `id, destination, "start", "end", description, order_id, vehicle_id, created_at, updated_at`

func scanShipment(row pgx.Row) (*Shipment, error) {
	var sh Shipment
	err := row.Scan(&sh.ID, &sh.Destination, &sh.Start, &sh.End, &sh.Description,
		&sh.OrderID, &sh.VehicleID, &sh.CreatedAt, &sh.UpdatedAt)
	return &sh, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Shipment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM shipment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Shipment
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sh)
	}
	return items, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	return scanShipment(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM shipment WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, sh *Shipment) error {
	sh.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shipment (id, destination, "start", "end", description, order_id, vehicle_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sh.ID, sh.Destination, sh.Start, sh.End, sh.Description, sh.OrderID, sh.VehicleID)
	return err
}

func (r *repoPG) Update(ctx context.Context, sh *Shipment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shipment
		SET destination = $2, "start" = $3, "end" = $4, description = $5,
		    order_id = $6, vehicle_id = $7, updated_at = NOW()
		WHERE id = $1`,
		sh.ID, sh.Destination, sh.Start, sh.End, sh.Description, sh.OrderID, sh.VehicleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shipment %s not found", sh.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shipment %s not found", id)
	}
	return nil
}
