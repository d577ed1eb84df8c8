package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// SalesRepository define el puerto para la corriente de ventas diarias.
// Mismo contrato de upsert por clave única que ProductionRepository.
type SalesRepository interface {
	Get(ctx context.Context, foodID string, date time.Time) (*entity.SalesEntry, error)
	Upsert(ctx context.Context, e *entity.SalesEntry) error
	TotalQuantity(ctx context.Context, foodID string) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.SalesEntry, error)
}
