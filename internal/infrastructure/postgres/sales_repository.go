package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación de SalesRepository sobre PostgreSQL (usable con pool o tx).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas diarias. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Get obtiene la fila (food_id, fecha); nil si no existe.
func (r *SalesRepo) Get(ctx context.Context, foodID string, date time.Time) (*entity.SalesEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_sold, sale_price, staff_id, COALESCE(notes, ''), created_at, updated_at
		FROM daily_sales WHERE food_id = $1 AND date = $2`
	var e entity.SalesEntry
	err := r.q.QueryRow(ctx, query, foodID, date).Scan(
		&e.ID, &e.FoodID, &e.Date, &e.QuantitySold, &e.SalePrice, &e.StaffID,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr("get sales entry", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza la fila por clave única (food_id, date): last-write-wins.
func (r *SalesRepo) Upsert(ctx context.Context, e *entity.SalesEntry) error {
	query := `
		INSERT INTO daily_sales (id, food_id, date, quantity_sold, sale_price, staff_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (food_id, date) DO UPDATE SET
			quantity_sold = EXCLUDED.quantity_sold,
			sale_price    = EXCLUDED.sale_price,
			staff_id      = EXCLUDED.staff_id,
			notes         = EXCLUDED.notes,
			updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FoodID, e.Date, e.QuantitySold, e.SalePrice, e.StaffID, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translateErr("upsert sales entry", err)
	}
	return nil
}

// TotalQuantity suma lo vendido históricamente para un alimento.
func (r *SalesRepo) TotalQuantity(ctx context.Context, foodID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_sold), 0) FROM daily_sales WHERE food_id = $1`,
		foodID,
	).Scan(&total)
	if err != nil {
		return 0, translateErr("total sales", err)
	}
	return total, nil
}

// ListRecent lista ventas más recientes primero.
func (r *SalesRepo) ListRecent(ctx context.Context, limit int) ([]*entity.SalesEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_sold, sale_price, staff_id, COALESCE(notes, ''), created_at, updated_at
		FROM daily_sales ORDER BY date DESC, updated_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, translateErr("list sales", err)
	}
	defer rows.Close()

	var entries []*entity.SalesEntry
	for rows.Next() {
		var e entity.SalesEntry
		if err := rows.Scan(
			&e.ID, &e.FoodID, &e.Date, &e.QuantitySold, &e.SalePrice, &e.StaffID,
			&e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, translateErr("scan sales entry", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
