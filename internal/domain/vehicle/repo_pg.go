package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, name, driver_name, plate_no, status, created_at, updated_at`

func scanVehicle(row pgx.Row) (*Vehicle, error) {
	var v Vehicle
	err := row.Scan(&v.ID, &v.Name, &v.DriverName, &v.PlateNo, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	return &v, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Vehicle, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM vehicle`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return scanVehicle(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM vehicle WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, v *Vehicle) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vehicle (id, name, driver_name, plate_no, status)
		VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.Name, v.DriverName, v.PlateNo, v.Status)
	return err
}

func (r *repoPG) Update(ctx context.Context, v *Vehicle) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE vehicle SET name = $2, driver_name = $3, plate_no = $4, status = $5, updated_at = NOW()
		WHERE id = $1`,
		v.ID, v.Name, v.DriverName, v.PlateNo, v.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", v.ID)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicle WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id)
	}
	return nil
}
