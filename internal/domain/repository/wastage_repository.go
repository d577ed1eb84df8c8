package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// WastageRepository define el puerto para la corriente de mermas diarias.
// La fila puede ser explícita (operador) o implícita (derivada); el campo
// Explicit decide la precedencia en el motor de derivación.
type WastageRepository interface {
	Get(ctx context.Context, foodID string, date time.Time) (*entity.WastageEntry, error)
	Upsert(ctx context.Context, e *entity.WastageEntry) error
	TotalQuantity(ctx context.Context, foodID string) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.WastageEntry, error)
}
