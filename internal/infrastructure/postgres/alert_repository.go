package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
// El índice único parcial sobre (food_id, alert_date, alert_type) WHERE NOT is_resolved
// respalda en la base el invariante de deduplicación que aplica el motor.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `
	a.id, a.food_id, COALESCE(f.name, ''), a.alert_date, a.alert_type, a.message,
	a.wastage_percentage, a.severity, a.is_resolved, a.resolved_by, a.resolved_at,
	COALESCE(a.resolution_notes, ''), a.created_at`

func scanAlert(row pgx.Row) (*entity.Alert, error) {
	var a entity.Alert
	err := row.Scan(
		&a.ID, &a.FoodID, &a.FoodName, &a.AlertDate, &a.Type, &a.Message,
		&a.WastagePercentage, &a.Severity, &a.IsResolved, &a.ResolvedBy, &a.ResolvedAt,
		&a.ResolutionNotes, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta una alerta nueva (siempre no resuelta).
func (r *AlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	query := `
		INSERT INTO wastage_alerts (id, food_id, alert_date, alert_type, message,
			wastage_percentage, severity, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.FoodID, a.AlertDate, a.Type, a.Message,
		a.WastagePercentage, a.Severity, a.CreatedAt,
	)
	if err != nil {
		return translateErr("insert alert", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID, con el nombre del alimento.
func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM wastage_alerts a
		LEFT JOIN food_items f ON f.id = a.food_id
		WHERE a.id = $1`
	a, err := scanAlert(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alerta %s: %w", id, domain.ErrNotFound)
		}
		return nil, translateErr("get alert", err)
	}
	return a, nil
}

// GetUnresolved busca la única alerta no resuelta para (food, fecha, tipo); nil si no existe.
func (r *AlertRepo) GetUnresolved(ctx context.Context, foodID string, date time.Time, alertType string) (*entity.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM wastage_alerts a
		LEFT JOIN food_items f ON f.id = a.food_id
		WHERE a.food_id = $1 AND a.alert_date = $2 AND a.alert_type = $3 AND NOT a.is_resolved`
	a, err := scanAlert(r.q.QueryRow(ctx, query, foodID, date, alertType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateErr("get unresolved alert", err)
	}
	return a, nil
}

// UpdateEvaluation actualiza porcentaje, severidad y mensaje de una alerta viva.
func (r *AlertRepo) UpdateEvaluation(ctx context.Context, a *entity.Alert) error {
	query := `
		UPDATE wastage_alerts
		SET message = $2, wastage_percentage = $3, severity = $4
		WHERE id = $1 AND NOT is_resolved`
	cmd, err := r.q.Exec(ctx, query, a.ID, a.Message, a.WastagePercentage, a.Severity)
	if err != nil {
		return translateErr("update alert evaluation", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("alerta %s no está viva: %w", a.ID, domain.ErrConflict)
	}
	return nil
}

// MarkResolved persiste la transición false → true con los metadatos del operador.
func (r *AlertRepo) MarkResolved(ctx context.Context, a *entity.Alert) error {
	query := `
		UPDATE wastage_alerts
		SET is_resolved = true, resolved_by = $2, resolved_at = $3, resolution_notes = $4
		WHERE id = $1 AND NOT is_resolved`
	cmd, err := r.q.Exec(ctx, query, a.ID, a.ResolvedBy, a.ResolvedAt, a.ResolutionNotes)
	if err != nil {
		return translateErr("mark alert resolved", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("alerta %s ya resuelta: %w", a.ID, domain.ErrConflict)
	}
	return nil
}

// List devuelve alertas por estado de resolución, más recientes primero.
func (r *AlertRepo) List(ctx context.Context, resolved bool, limit int) ([]*entity.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM wastage_alerts a
		LEFT JOIN food_items f ON f.id = a.food_id
		WHERE a.is_resolved = $1
		ORDER BY a.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, resolved, limit)
	if err != nil {
		return nil, translateErr("list alerts", err)
	}
	defer rows.Close()

	var alerts []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, translateErr("scan alert", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
