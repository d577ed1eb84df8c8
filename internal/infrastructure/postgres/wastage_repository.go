package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.WastageRepository = (*WastageRepo)(nil)

// WastageRepo implementación de WastageRepository sobre PostgreSQL (usable con pool o tx).
type WastageRepo struct {
	q Querier
}

// NewWastageRepository construye el adaptador de mermas diarias. Pasar pool o tx (Querier).
func NewWastageRepository(q Querier) *WastageRepo {
	return &WastageRepo{q: q}
}

// Get obtiene la fila (food_id, fecha); nil si no existe.
func (r *WastageRepo) Get(ctx context.Context, foodID string, date time.Time) (*entity.WastageEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_wasted, reason, waste_value, explicit,
			staff_id, COALESCE(notes, ''), created_at, updated_at
		FROM daily_wastage WHERE food_id = $1 AND date = $2`
	var e entity.WastageEntry
	err := r.q.QueryRow(ctx, query, foodID, date).Scan(
		&e.ID, &e.FoodID, &e.Date, &e.QuantityWasted, &e.Reason, &e.WasteValue, &e.Explicit,
		&e.StaffID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr("get wastage entry", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza la fila por clave única (food_id, date): last-write-wins.
func (r *WastageRepo) Upsert(ctx context.Context, e *entity.WastageEntry) error {
	query := `
		INSERT INTO daily_wastage (id, food_id, date, quantity_wasted, reason, waste_value,
			explicit, staff_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (food_id, date) DO UPDATE SET
			quantity_wasted = EXCLUDED.quantity_wasted,
			reason          = EXCLUDED.reason,
			waste_value     = EXCLUDED.waste_value,
			explicit        = EXCLUDED.explicit,
			staff_id        = EXCLUDED.staff_id,
			notes           = EXCLUDED.notes,
			updated_at      = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FoodID, e.Date, e.QuantityWasted, e.Reason, e.WasteValue,
		e.Explicit, e.StaffID, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return translateErr("upsert wastage entry", err)
	}
	return nil
}

// TotalQuantity suma lo mermado históricamente para un alimento.
func (r *WastageRepo) TotalQuantity(ctx context.Context, foodID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_wasted), 0) FROM daily_wastage WHERE food_id = $1`,
		foodID,
	).Scan(&total)
	if err != nil {
		return 0, translateErr("total wastage", err)
	}
	return total, nil
}

// ListRecent lista mermas más recientes primero.
func (r *WastageRepo) ListRecent(ctx context.Context, limit int) ([]*entity.WastageEntry, error) {
	query := `
		SELECT id, food_id, date, quantity_wasted, reason, waste_value, explicit,
			staff_id, COALESCE(notes, ''), created_at, updated_at
		FROM daily_wastage ORDER BY date DESC, updated_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, translateErr("list wastage", err)
	}
	defer rows.Close()

	var entries []*entity.WastageEntry
	for rows.Next() {
		var e entity.WastageEntry
		if err := rows.Scan(
			&e.ID, &e.FoodID, &e.Date, &e.QuantityWasted, &e.Reason, &e.WasteValue, &e.Explicit,
			&e.StaffID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, translateErr("scan wastage entry", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
