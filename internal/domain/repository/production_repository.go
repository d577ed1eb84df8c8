package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// ProductionRepository define el puerto para la corriente de producción diaria.
// Upsert sobre la clave única (food_id, fecha) actualiza la fila en sitio
// (last-write-wins); nunca crea duplicados.
type ProductionRepository interface {
	Get(ctx context.Context, foodID string, date time.Time) (*entity.ProductionEntry, error)
	Upsert(ctx context.Context, e *entity.ProductionEntry) error
	// TotalQuantity suma lo producido históricamente para inferir stock actual.
	TotalQuantity(ctx context.Context, foodID string) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.ProductionEntry, error)
}
