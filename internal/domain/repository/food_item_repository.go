package repository

import (
	"context"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// FoodItemUpdate enumera exactamente los campos mutables de FoodItem.
// Un puntero nil significa "no tocar". Reemplaza el patrón dinámico
// "actualizar cualquier campo por nombre": campos desconocidos se
// rechazan en el borde, no llegan aquí.
type FoodItemUpdate struct {
	Name                *string
	CategoryID          *string
	UnitID              *string
	SupplierID          *string
	CostPerUnit         *string // decimal como texto, validado en el use case
	SellingPricePerUnit *string
	MinStockLevel       *int
	MaxStockLevel       *int
	IsActive            *bool
}

// FoodItemRepository define el puerto de persistencia para FoodItem (DIP).
// El catálogo es dato maestro de un colaborador externo: el motor solo lo lee
// (foto de precios) y admite la actualización parcial tipada.
type FoodItemRepository interface {
	Create(ctx context.Context, item *entity.FoodItem) error
	GetByID(ctx context.Context, id string) (*entity.FoodItem, error)
	// GetForUpdate bloquea la fila del alimento (SELECT FOR UPDATE). Es el punto
	// de serialización de escrituras concurrentes sobre la misma clave (food, fecha).
	GetForUpdate(ctx context.Context, id string) (*entity.FoodItem, error)
	Update(ctx context.Context, id string, upd FoodItemUpdate) (*entity.FoodItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.FoodItem, error)
}
