package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// Nombres lógicos de tabla usados en los registros de auditoría.
const (
	tableProduction = "daily_production"
	tableSales      = "daily_sales"
	tableWastage    = "daily_wastage"
)

// productionValues serializa una entrada de producción como mapa antes/después.
// Decimales como texto para que el diff y el JSONB sean estables.
func productionValues(e *entity.ProductionEntry) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{
		"food_id":           e.FoodID,
		"date":              e.Date.Format("2006-01-02"),
		"quantity_prepared": e.QuantityPrepared,
		"production_cost":   e.ProductionCost.String(),
		"staff_id":          e.StaffID,
		"start_time":        e.StartTime,
		"end_time":          e.EndTime,
		"notes":             e.Notes,
	}
}

func salesValues(e *entity.SalesEntry) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{
		"food_id":       e.FoodID,
		"date":          e.Date.Format("2006-01-02"),
		"quantity_sold": e.QuantitySold,
		"sale_price":    e.SalePrice.String(),
		"staff_id":      e.StaffID,
		"notes":         e.Notes,
	}
}

func wastageValues(e *entity.WastageEntry) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{
		"food_id":         e.FoodID,
		"date":            e.Date.Format("2006-01-02"),
		"quantity_wasted": e.QuantityWasted,
		"reason":          e.Reason,
		"waste_value":     e.WasteValue.String(),
		"explicit":        e.Explicit,
		"staff_id":        e.StaffID,
		"notes":           e.Notes,
	}
}

// writeAudit inserta el registro inmutable antes/después dentro de la transacción
// en curso. ChangedFields es el diff simétrico ordenado de ambos mapas.
func writeAudit(
	ctx context.Context,
	auditRepo repository.AuditRepository,
	table, recordID, op string,
	oldVals, newVals map[string]any,
	staffID string,
	now time.Time,
) error {
	return auditRepo.Create(ctx, &entity.AuditRecord{
		ID:            uuid.New().String(),
		TableName:     table,
		RecordID:      recordID,
		Operation:     op,
		OldValues:     oldVals,
		NewValues:     newVals,
		ChangedFields: ledger.DiffFields(oldVals, newVals),
		StaffID:       staffID,
		CreatedAt:     now,
	})
}
