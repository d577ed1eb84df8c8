// Package catalog gestiona el dato maestro FoodItem: el motor consume el catálogo
// (foto de precios, niveles de stock) y expone altas y actualizaciones parciales
// tipadas. Categorías, unidades, proveedores y personal viven en otro sistema;
// aquí solo se referencian por ID.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

const tableFoodItems = "food_items"

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Las mutaciones del catálogo se auditan igual que las del libro diario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		foodRepo repository.FoodItemRepository,
		prodRepo repository.ProductionRepository,
		salesRepo repository.SalesRepository,
		wastageRepo repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// UseCase lecturas y mutaciones del catálogo de alimentos.
type UseCase struct {
	txRunner TxRunner
	foodRepo repository.FoodItemRepository
	maxLimit int
}

// NewUseCase construye el caso de uso. foodRepo es el repositorio sobre el pool
// para lecturas; las mutaciones corren dentro del txRunner.
func NewUseCase(txRunner TxRunner, foodRepo repository.FoodItemRepository, maxLimit int) *UseCase {
	return &UseCase{txRunner: txRunner, foodRepo: foodRepo, maxLimit: maxLimit}
}

// Get devuelve un alimento por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.FoodItemDTO, error) {
	if id == "" {
		return nil, fmt.Errorf("id requerido: %w", domain.ErrValidation)
	}
	food, err := uc.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FoodItemFromEntity(food), nil
}

// List devuelve el catálogo paginado.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.FoodItemDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	foods, err := uc.foodRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FoodItemDTO, 0, len(foods))
	for _, f := range foods {
		out = append(out, dto.FoodItemFromEntity(f))
	}
	return out, nil
}

// Create da de alta un alimento activo y lo audita.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateFoodItemRequest, staffID string) (*dto.FoodItemDTO, error) {
	if in.Name == "" || in.CategoryID == "" || in.UnitID == "" {
		return nil, fmt.Errorf("name, category_id y unit_id requeridos: %w", domain.ErrValidation)
	}
	if in.CostPerUnit.IsNegative() || in.SellingPricePerUnit.IsNegative() {
		return nil, fmt.Errorf("costo y precio no pueden ser negativos: %w", domain.ErrValidation)
	}
	if in.MinStockLevel < 0 || in.MaxStockLevel < 0 {
		return nil, fmt.Errorf("niveles de stock no pueden ser negativos: %w", domain.ErrValidation)
	}
	if in.MaxStockLevel > 0 && in.MinStockLevel > in.MaxStockLevel {
		return nil, fmt.Errorf("min_stock_level mayor que max_stock_level: %w", domain.ErrValidation)
	}

	now := time.Now().UTC()
	food := &entity.FoodItem{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		CategoryID:          in.CategoryID,
		UnitID:              in.UnitID,
		SupplierID:          in.SupplierID,
		CostPerUnit:         in.CostPerUnit.Round(2),
		SellingPricePerUnit: in.SellingPricePerUnit.Round(2),
		MinStockLevel:       in.MinStockLevel,
		MaxStockLevel:       in.MaxStockLevel,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := uc.txRunner.Run(ctx, func(
		foodRepo repository.FoodItemRepository,
		_ repository.ProductionRepository,
		_ repository.SalesRepository,
		_ repository.WastageRepository,
		_ repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := foodRepo.Create(ctx, food); err != nil {
			return err
		}
		newVals := foodValues(food)
		return auditRepo.Create(ctx, &entity.AuditRecord{
			ID:            uuid.New().String(),
			TableName:     tableFoodItems,
			RecordID:      food.ID,
			Operation:     entity.AuditOpInsert,
			NewValues:     newVals,
			ChangedFields: ledger.DiffFields(nil, newVals),
			StaffID:       staffID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.FoodItemFromEntity(food), nil
}

// Update aplica una actualización parcial tipada: solo los campos presentes
// cambian, cualquier otro campo es inalcanzable por esta vía.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateFoodItemRequest, staffID string) (*dto.FoodItemDTO, error) {
	if id == "" {
		return nil, fmt.Errorf("id requerido: %w", domain.ErrValidation)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("name no puede quedar vacío: %w", domain.ErrValidation)
	}
	if in.CostPerUnit != nil && in.CostPerUnit.IsNegative() {
		return nil, fmt.Errorf("cost_per_unit negativo: %w", domain.ErrValidation)
	}
	if in.SellingPricePerUnit != nil && in.SellingPricePerUnit.IsNegative() {
		return nil, fmt.Errorf("selling_price_per_unit negativo: %w", domain.ErrValidation)
	}
	if in.MinStockLevel != nil && *in.MinStockLevel < 0 {
		return nil, fmt.Errorf("min_stock_level negativo: %w", domain.ErrValidation)
	}
	if in.MaxStockLevel != nil && *in.MaxStockLevel < 0 {
		return nil, fmt.Errorf("max_stock_level negativo: %w", domain.ErrValidation)
	}

	upd := repository.FoodItemUpdate{
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		UnitID:        in.UnitID,
		SupplierID:    in.SupplierID,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		IsActive:      in.IsActive,
	}
	if in.CostPerUnit != nil {
		s := in.CostPerUnit.Round(2).String()
		upd.CostPerUnit = &s
	}
	if in.SellingPricePerUnit != nil {
		s := in.SellingPricePerUnit.Round(2).String()
		upd.SellingPricePerUnit = &s
	}

	var updated *entity.FoodItem
	err := uc.txRunner.Run(ctx, func(
		foodRepo repository.FoodItemRepository,
		_ repository.ProductionRepository,
		_ repository.SalesRepository,
		_ repository.WastageRepository,
		_ repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		// Bloquea la fila: una entrega concurrente no debe fotografiar precios a medio cambiar
		old, err := foodRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		updated, err = foodRepo.Update(ctx, id, upd)
		if err != nil {
			return err
		}
		oldVals := foodValues(old)
		newVals := foodValues(updated)
		return auditRepo.Create(ctx, &entity.AuditRecord{
			ID:            uuid.New().String(),
			TableName:     tableFoodItems,
			RecordID:      id,
			Operation:     entity.AuditOpUpdate,
			OldValues:     oldVals,
			NewValues:     newVals,
			ChangedFields: ledger.DiffFields(oldVals, newVals),
			StaffID:       staffID,
			CreatedAt:     time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.FoodItemFromEntity(updated), nil
}

// foodValues serializa el alimento como mapa antes/después para auditoría.
func foodValues(f *entity.FoodItem) map[string]any {
	supplier := ""
	if f.SupplierID != nil {
		supplier = *f.SupplierID
	}
	return map[string]any{
		"name":                   f.Name,
		"category_id":            f.CategoryID,
		"unit_id":                f.UnitID,
		"supplier_id":            supplier,
		"cost_per_unit":          f.CostPerUnit.String(),
		"selling_price_per_unit": f.SellingPricePerUnit.String(),
		"min_stock_level":        f.MinStockLevel,
		"max_stock_level":        f.MaxStockLevel,
		"is_active":              f.IsActive,
	}
}
