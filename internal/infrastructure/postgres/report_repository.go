package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de ReportRepository sobre PostgreSQL.
// Solo lecturas; la agregación pesada ocurre en SQL, no en Go.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDailyLedger devuelve el libro diario de [from, to]: por cada (alimento, fecha)
// con actividad en cualquiera de las tres corrientes, hechos y derivados.
func (r *ReportRepo) GetDailyLedger(ctx context.Context, from, to time.Time, limit int) ([]repository.DailyLedgerRow, error) {
	query := `
		SELECT f.id, f.name, k.date,
			COALESCE(p.quantity_prepared, 0),
			COALESCE(s.quantity_sold, 0),
			COALESCE(w.quantity_wasted, 0),
			COALESCE(w.explicit, false),
			COALESCE(p.production_cost, 0),
			COALESCE(s.sale_price, 0),
			COALESCE(w.waste_value, 0),
			CASE WHEN COALESCE(p.quantity_prepared, 0) > 0
				THEN ROUND(COALESCE(w.quantity_wasted, 0)::numeric * 100 / p.quantity_prepared, 2)
				ELSE 0 END
		FROM (
			SELECT food_id, date FROM daily_production WHERE date BETWEEN $1 AND $2
			UNION
			SELECT food_id, date FROM daily_sales WHERE date BETWEEN $1 AND $2
			UNION
			SELECT food_id, date FROM daily_wastage WHERE date BETWEEN $1 AND $2
		) k
		JOIN food_items f ON f.id = k.food_id
		LEFT JOIN daily_production p ON p.food_id = k.food_id AND p.date = k.date
		LEFT JOIN daily_sales s ON s.food_id = k.food_id AND s.date = k.date
		LEFT JOIN daily_wastage w ON w.food_id = k.food_id AND w.date = k.date
		ORDER BY k.date DESC, f.name
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, translateErr("daily ledger", err)
	}
	defer rows.Close()

	var out []repository.DailyLedgerRow
	for rows.Next() {
		var row repository.DailyLedgerRow
		if err := rows.Scan(
			&row.FoodID, &row.FoodName, &row.Date,
			&row.QuantityPrepared, &row.QuantitySold, &row.QuantityWasted, &row.WastageExplicit,
			&row.ProductionCost, &row.SalesRevenue, &row.WasteValue, &row.WastagePercentage,
		); err != nil {
			return nil, translateErr("scan daily ledger row", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetWeeklySummary agrega [from, to] por alimento, ordenado por categoría y nombre.
// Alimentos sin actividad en el rango no aparecen.
func (r *ReportRepo) GetWeeklySummary(ctx context.Context, from, to time.Time) ([]repository.WeeklySummaryRow, error) {
	query := `
		WITH p AS (
			SELECT food_id, SUM(quantity_prepared) AS qty, SUM(production_cost) AS cost
			FROM daily_production WHERE date BETWEEN $1 AND $2 GROUP BY food_id
		), s AS (
			SELECT food_id, SUM(quantity_sold) AS qty, SUM(sale_price) AS revenue
			FROM daily_sales WHERE date BETWEEN $1 AND $2 GROUP BY food_id
		), w AS (
			SELECT food_id, SUM(quantity_wasted) AS qty, SUM(waste_value) AS value
			FROM daily_wastage WHERE date BETWEEN $1 AND $2 GROUP BY food_id
		)
		SELECT f.id, f.name,
			COALESCE(p.qty, 0), COALESCE(s.qty, 0), COALESCE(w.qty, 0),
			COALESCE(p.cost, 0), COALESCE(s.revenue, 0), COALESCE(w.value, 0),
			CASE WHEN COALESCE(p.qty, 0) > 0
				THEN ROUND(COALESCE(w.qty, 0)::numeric * 100 / p.qty, 2)
				ELSE 0 END
		FROM food_items f
		JOIN (
			SELECT food_id FROM p
			UNION
			SELECT food_id FROM s
			UNION
			SELECT food_id FROM w
		) active ON active.food_id = f.id
		LEFT JOIN p ON p.food_id = f.id
		LEFT JOIN s ON s.food_id = f.id
		LEFT JOIN w ON w.food_id = f.id
		LEFT JOIN categories c ON c.id = f.category_id
		ORDER BY COALESCE(c.name, ''), f.name`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, translateErr("weekly summary", err)
	}
	defer rows.Close()

	var out []repository.WeeklySummaryRow
	for rows.Next() {
		var row repository.WeeklySummaryRow
		if err := rows.Scan(
			&row.FoodID, &row.FoodName,
			&row.TotalPrepared, &row.TotalSold, &row.TotalWasted,
			&row.TotalCost, &row.TotalRevenue, &row.TotalWasteValue,
			&row.WastagePercentage,
		); err != nil {
			return nil, translateErr("scan weekly summary row", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetWindowSamples devuelve los días con venta registrada de un alimento en
// [from, to], en orden cronológico, con su producción y merma del mismo día.
func (r *ReportRepo) GetWindowSamples(ctx context.Context, foodID string, from, to time.Time) ([]repository.DaySample, error) {
	query := `
		SELECT s.date,
			COALESCE(p.quantity_prepared, 0),
			s.quantity_sold,
			COALESCE(w.quantity_wasted, 0)
		FROM daily_sales s
		LEFT JOIN daily_production p ON p.food_id = s.food_id AND p.date = s.date
		LEFT JOIN daily_wastage w ON w.food_id = s.food_id AND w.date = s.date
		WHERE s.food_id = $1 AND s.date BETWEEN $2 AND $3
		ORDER BY s.date`
	rows, err := r.q.Query(ctx, query, foodID, from, to)
	if err != nil {
		return nil, translateErr("window samples", err)
	}
	defer rows.Close()

	var out []repository.DaySample
	for rows.Next() {
		var s repository.DaySample
		if err := rows.Scan(&s.Date, &s.QuantityPrepared, &s.QuantitySold, &s.QuantityWasted); err != nil {
			return nil, translateErr("scan window sample", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetDayTotals agrega el día completo: cantidades y valores de las tres corrientes.
func (r *ReportRepo) GetDayTotals(ctx context.Context, date time.Time) (prepared, sold, wasted int, cost, revenue, wasteValue decimal.Decimal, err error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(quantity_prepared), 0) FROM daily_production WHERE date = $1),
			(SELECT COALESCE(SUM(quantity_sold), 0) FROM daily_sales WHERE date = $1),
			(SELECT COALESCE(SUM(quantity_wasted), 0) FROM daily_wastage WHERE date = $1),
			(SELECT COALESCE(SUM(production_cost), 0) FROM daily_production WHERE date = $1),
			(SELECT COALESCE(SUM(sale_price), 0) FROM daily_sales WHERE date = $1),
			(SELECT COALESCE(SUM(waste_value), 0) FROM daily_wastage WHERE date = $1)`
	err = r.q.QueryRow(ctx, query, date).Scan(&prepared, &sold, &wasted, &cost, &revenue, &wasteValue)
	if err != nil {
		err = translateErr("day totals", err)
	}
	return
}

// CountUnresolvedAlerts cuenta las alertas sin resolver.
func (r *ReportRepo) CountUnresolvedAlerts(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM wastage_alerts WHERE NOT is_resolved`).Scan(&n)
	if err != nil {
		return 0, translateErr("count unresolved alerts", err)
	}
	return n, nil
}
