package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de producción diaria. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Get obtiene la fila (food_id, fecha); nil si no existe.
func (r *ProductionRepo) Get(ctx context.Context, foodID string, date time.Time) (*entity.ProductionEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_prepared, production_cost, staff_id,
			COALESCE(start_time, ''), COALESCE(end_time, ''), COALESCE(notes, ''), created_at, updated_at
		FROM daily_production WHERE food_id = $1 AND date = $2`
	var e entity.ProductionEntry
	err := r.q.QueryRow(ctx, query, foodID, date).Scan(
		&e.ID, &e.FoodID, &e.Date, &e.QuantityPrepared, &e.ProductionCost, &e.StaffID,
		&e.StartTime, &e.EndTime, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr("get production entry", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza la fila por clave única (food_id, date): last-write-wins.
func (r *ProductionRepo) Upsert(ctx context.Context, e *entity.ProductionEntry) error {
	query := `
		INSERT INTO daily_production (id, food_id, date, quantity_prepared, production_cost,
			staff_id, start_time, end_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (food_id, date) DO UPDATE SET
			quantity_prepared = EXCLUDED.quantity_prepared,
			production_cost   = EXCLUDED.production_cost,
			staff_id          = EXCLUDED.staff_id,
			start_time        = EXCLUDED.start_time,
			end_time          = EXCLUDED.end_time,
			notes             = EXCLUDED.notes,
			updated_at        = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FoodID, e.Date, e.QuantityPrepared, e.ProductionCost,
		e.StaffID, e.StartTime, e.EndTime, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translateErr("upsert production entry", err)
	}
	return nil
}

// TotalQuantity suma lo producido históricamente para un alimento.
func (r *ProductionRepo) TotalQuantity(ctx context.Context, foodID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_prepared), 0) FROM daily_production WHERE food_id = $1`,
		foodID,
	).Scan(&total)
	if err != nil {
		return 0, translateErr("total production", err)
	}
	return total, nil
}

// ListRecent lista producción más reciente primero.
func (r *ProductionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.ProductionEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_prepared, production_cost, staff_id,
			COALESCE(start_time, ''), COALESCE(end_time, ''), COALESCE(notes, ''), created_at, updated_at
		FROM daily_production ORDER BY date DESC, updated_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, translateErr("list production", err)
	}
	defer rows.Close()

	var entries []*entity.ProductionEntry
	for rows.Next() {
		var e entity.ProductionEntry
		if err := rows.Scan(
			&e.ID, &e.FoodID, &e.Date, &e.QuantityPrepared, &e.ProductionCost, &e.StaffID,
			&e.StartTime, &e.EndTime, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, translateErr("scan production entry", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
