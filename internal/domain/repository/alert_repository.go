package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia de alertas.
type AlertRepository interface {
	Create(ctx context.Context, a *entity.Alert) error
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	// GetUnresolved busca la única alerta no resuelta para (food, fecha, tipo);
	// nil si no existe. Es la base del invariante de deduplicación.
	GetUnresolved(ctx context.Context, foodID string, date time.Time, alertType string) (*entity.Alert, error)
	// UpdateEvaluation actualiza porcentaje, severidad y mensaje de una alerta viva.
	UpdateEvaluation(ctx context.Context, a *entity.Alert) error
	// MarkResolved persiste la transición false→true con metadatos del operador.
	MarkResolved(ctx context.Context, a *entity.Alert) error
	List(ctx context.Context, resolved bool, limit int) ([]*entity.Alert, error)
}
