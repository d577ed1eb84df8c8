package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// SubmitUseCase compromete entregas de producción, ventas y mermas de forma
// transaccional: upsert del hecho, foto de precios, merma implícita, alertas
// y auditoría suceden en una sola transacción con bloqueo de fila (SELECT FOR
// UPDATE) sobre el alimento. Una entrega o se ve completa o no se ve.
type SubmitUseCase struct {
	txRunner TxRunner
	policy   Policy
}

// NewSubmitUseCase construye el caso de uso.
func NewSubmitUseCase(txRunner TxRunner, policy Policy) *SubmitUseCase {
	return &SubmitUseCase{txRunner: txRunner, policy: policy}
}

// derivedState es el estado derivado de la clave (alimento, fecha) tras el commit.
type derivedState struct {
	Prepared   int
	Sold       int
	Wasted     int
	Explicit   bool
	Cost       decimal.Decimal
	Revenue    decimal.Decimal
	WasteValue decimal.Decimal
	Percentage decimal.Decimal
}

// SubmitProduction compromete una entrega de producción para (food_id, fecha).
// Una segunda entrega para la misma clave actualiza la fila (last-write-wins);
// ambas quedan auditadas.
func (uc *SubmitUseCase) SubmitProduction(ctx context.Context, in dto.SubmitProductionRequest) (*dto.DerivedStateResponse, error) {
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, err
	}
	if in.FoodID == "" {
		return nil, fmt.Errorf("food_id requerido: %w", domain.ErrValidation)
	}
	if in.QuantityPrepared < 0 {
		return nil, fmt.Errorf("quantity_prepared negativa: %w", domain.ErrValidation)
	}
	if !validClock(in.StartTime) || !validClock(in.EndTime) {
		return nil, fmt.Errorf("hora inválida, formato HH:MM: %w", domain.ErrValidation)
	}
	staffID := uc.staffOrDefault(in.StaffID)

	var resp *dto.DerivedStateResponse
	err = uc.txRunner.Run(ctx, func(
		foodRepo repository.FoodItemRepository,
		prodRepo repository.ProductionRepository,
		salesRepo repository.SalesRepository,
		wastageRepo repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		// Bloquea la fila del alimento: punto de serialización para la clave (food, fecha)
		food, err := foodRepo.GetForUpdate(ctx, in.FoodID)
		if err != nil {
			return err
		}
		if !food.IsActive {
			return fmt.Errorf("alimento inactivo: %w", domain.ErrValidation)
		}

		now := time.Now().UTC()
		prev, err := prodRepo.Get(ctx, in.FoodID, date)
		if err != nil {
			return err
		}

		entry := &entity.ProductionEntry{
			ID:               uuid.New().String(),
			FoodID:           in.FoodID,
			Date:             date,
			QuantityPrepared: in.QuantityPrepared,
			// Foto de precios: el costo unitario vigente al commit, no al consultar
			ProductionCost: food.CostPerUnit.Mul(decimal.NewFromInt(int64(in.QuantityPrepared))).Round(2),
			StaffID:        staffID,
			StartTime:      in.StartTime,
			EndTime:        in.EndTime,
			Notes:          in.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		op := entity.AuditOpInsert
		if prev != nil {
			entry.ID = prev.ID
			entry.CreatedAt = prev.CreatedAt
			op = entity.AuditOpUpdate
		}
		if err := prodRepo.Upsert(ctx, entry); err != nil {
			return err
		}
		if err := writeAudit(ctx, auditRepo, tableProduction, entry.ID, op,
			productionValues(prev), productionValues(entry), staffID, now); err != nil {
			return err
		}

		state, alert, err := uc.derive(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, auditRepo, food, date, staffID, now)
		if err != nil {
			return err
		}
		if err := uc.checkLowStock(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, food, date, now); err != nil {
			return err
		}
		resp = buildDerivedResponse(food, date, state, alert)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitSales compromete una entrega de ventas para (food_id, fecha). Vender más
// de lo producido ese día no es anómalo: se asume consumo de stock previo.
func (uc *SubmitUseCase) SubmitSales(ctx context.Context, in dto.SubmitSalesRequest) (*dto.DerivedStateResponse, error) {
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, err
	}
	if in.FoodID == "" {
		return nil, fmt.Errorf("food_id requerido: %w", domain.ErrValidation)
	}
	if in.QuantitySold < 0 {
		return nil, fmt.Errorf("quantity_sold negativa: %w", domain.ErrValidation)
	}
	staffID := uc.staffOrDefault(in.StaffID)

	var resp *dto.DerivedStateResponse
	err = uc.txRunner.Run(ctx, func(
		foodRepo repository.FoodItemRepository,
		prodRepo repository.ProductionRepository,
		salesRepo repository.SalesRepository,
		wastageRepo repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		food, err := foodRepo.GetForUpdate(ctx, in.FoodID)
		if err != nil {
			return err
		}
		if !food.IsActive {
			return fmt.Errorf("alimento inactivo: %w", domain.ErrValidation)
		}

		now := time.Now().UTC()
		prev, err := salesRepo.Get(ctx, in.FoodID, date)
		if err != nil {
			return err
		}

		entry := &entity.SalesEntry{
			ID:           uuid.New().String(),
			FoodID:       in.FoodID,
			Date:         date,
			QuantitySold: in.QuantitySold,
			SalePrice:    food.SellingPricePerUnit.Mul(decimal.NewFromInt(int64(in.QuantitySold))).Round(2),
			StaffID:      staffID,
			Notes:        in.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		op := entity.AuditOpInsert
		if prev != nil {
			entry.ID = prev.ID
			entry.CreatedAt = prev.CreatedAt
			op = entity.AuditOpUpdate
		}
		if err := salesRepo.Upsert(ctx, entry); err != nil {
			return err
		}
		if err := writeAudit(ctx, auditRepo, tableSales, entry.ID, op,
			salesValues(prev), salesValues(entry), staffID, now); err != nil {
			return err
		}

		state, alert, err := uc.derive(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, auditRepo, food, date, staffID, now)
		if err != nil {
			return err
		}
		if err := uc.checkLowStock(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, food, date, now); err != nil {
			return err
		}
		resp = buildDerivedResponse(food, date, state, alert)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitWastage compromete una merma explícita para (food_id, fecha). Una merma
// explícita prevalece: la derivación implícita deja de recomputar esa clave.
func (uc *SubmitUseCase) SubmitWastage(ctx context.Context, in dto.SubmitWastageRequest) (*dto.DerivedStateResponse, error) {
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, err
	}
	if in.FoodID == "" {
		return nil, fmt.Errorf("food_id requerido: %w", domain.ErrValidation)
	}
	if in.QuantityWasted < 0 {
		return nil, fmt.Errorf("quantity_wasted negativa: %w", domain.ErrValidation)
	}
	if !entity.ValidWastageReason(in.Reason) {
		return nil, fmt.Errorf("razón de merma desconocida %q: %w", in.Reason, domain.ErrValidation)
	}
	staffID := uc.staffOrDefault(in.StaffID)

	var resp *dto.DerivedStateResponse
	err = uc.txRunner.Run(ctx, func(
		foodRepo repository.FoodItemRepository,
		prodRepo repository.ProductionRepository,
		salesRepo repository.SalesRepository,
		wastageRepo repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		food, err := foodRepo.GetForUpdate(ctx, in.FoodID)
		if err != nil {
			return err
		}
		if !food.IsActive {
			return fmt.Errorf("alimento inactivo: %w", domain.ErrValidation)
		}

		now := time.Now().UTC()
		prev, err := wastageRepo.Get(ctx, in.FoodID, date)
		if err != nil {
			return err
		}

		entry := &entity.WastageEntry{
			ID:             uuid.New().String(),
			FoodID:         in.FoodID,
			Date:           date,
			QuantityWasted: in.QuantityWasted,
			Reason:         in.Reason,
			WasteValue:     ledger.WasteValue(in.QuantityWasted, food.CostPerUnit),
			Explicit:       true,
			StaffID:        staffID,
			Notes:          in.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		op := entity.AuditOpInsert
		if prev != nil {
			entry.ID = prev.ID
			entry.CreatedAt = prev.CreatedAt
			op = entity.AuditOpUpdate
		}
		if err := wastageRepo.Upsert(ctx, entry); err != nil {
			return err
		}
		if err := writeAudit(ctx, auditRepo, tableWastage, entry.ID, op,
			wastageValues(prev), wastageValues(entry), staffID, now); err != nil {
			return err
		}

		state, alert, err := uc.derive(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, auditRepo, food, date, staffID, now)
		if err != nil {
			return err
		}
		if err := uc.checkLowStock(ctx, prodRepo, salesRepo, wastageRepo, alertRepo, food, date, now); err != nil {
			return err
		}
		resp = buildDerivedResponse(food, date, state, alert)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// derive recomputa el estado derivado de (alimento, fecha): merma implícita si no
// hay merma explícita, porcentaje de merma y evaluación de la alerta high_wastage
// con deduplicación sobre la alerta no resuelta.
func (uc *SubmitUseCase) derive(
	ctx context.Context,
	prodRepo repository.ProductionRepository,
	salesRepo repository.SalesRepository,
	wastageRepo repository.WastageRepository,
	alertRepo repository.AlertRepository,
	auditRepo repository.AuditRepository,
	food *entity.FoodItem,
	date time.Time,
	staffID string,
	now time.Time,
) (derivedState, *entity.Alert, error) {
	var state derivedState
	state.Cost = decimal.Zero
	state.Revenue = decimal.Zero
	state.WasteValue = decimal.Zero

	prod, err := prodRepo.Get(ctx, food.ID, date)
	if err != nil {
		return state, nil, err
	}
	if prod != nil {
		state.Prepared = prod.QuantityPrepared
		state.Cost = prod.ProductionCost
	}
	sales, err := salesRepo.Get(ctx, food.ID, date)
	if err != nil {
		return state, nil, err
	}
	if sales != nil {
		state.Sold = sales.QuantitySold
		state.Revenue = sales.SalePrice
	}
	wast, err := wastageRepo.Get(ctx, food.ID, date)
	if err != nil {
		return state, nil, err
	}

	switch {
	case wast != nil && wast.Explicit:
		// La merma explícita prevalece: nunca se recomputa
		state.Wasted = wast.QuantityWasted
		state.WasteValue = wast.WasteValue
		state.Explicit = true
	default:
		implicit := ledger.ImplicitWastage(state.Prepared, state.Sold)
		state.Wasted = implicit
		state.WasteValue = ledger.WasteValue(implicit, food.CostPerUnit)
		if wast == nil && implicit > 0 {
			row := &entity.WastageEntry{
				ID:             uuid.New().String(),
				FoodID:         food.ID,
				Date:           date,
				QuantityWasted: implicit,
				Reason:         entity.WastageReasonOverproduction,
				WasteValue:     state.WasteValue,
				Explicit:       false,
				StaffID:        staffID,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := wastageRepo.Upsert(ctx, row); err != nil {
				return state, nil, err
			}
			if err := writeAudit(ctx, auditRepo, tableWastage, row.ID, entity.AuditOpInsert,
				nil, wastageValues(row), staffID, now); err != nil {
				return state, nil, err
			}
		} else if wast != nil && wast.QuantityWasted != implicit {
			updated := *wast
			updated.QuantityWasted = implicit
			updated.WasteValue = state.WasteValue
			updated.UpdatedAt = now
			if err := wastageRepo.Upsert(ctx, &updated); err != nil {
				return state, nil, err
			}
			if err := writeAudit(ctx, auditRepo, tableWastage, updated.ID, entity.AuditOpUpdate,
				wastageValues(wast), wastageValues(&updated), staffID, now); err != nil {
				return state, nil, err
			}
		}
	}

	state.Percentage = ledger.WastagePercentage(state.Wasted, state.Prepared)

	severity, triggered := ledger.ClassifySeverity(state.Percentage, uc.policy.Thresholds)
	if !triggered {
		// Bajo el umbral no se emite nada; las alertas vivas nunca se auto-resuelven
		return state, nil, nil
	}
	msg := fmt.Sprintf("High wastage for %s on %s: %s%% of production wasted",
		food.Name, date.Format("2006-01-02"), state.Percentage.String())
	alert, err := uc.upsertAlert(ctx, alertRepo, food, date, entity.AlertTypeHighWastage, msg, state.Percentage, severity, now)
	if err != nil {
		return state, nil, err
	}
	return state, alert, nil
}

// checkLowStock compara el stock inferido (producido − vendido − mermado histórico)
// contra el mínimo del alimento y emite/actualiza la alerta low_stock.
func (uc *SubmitUseCase) checkLowStock(
	ctx context.Context,
	prodRepo repository.ProductionRepository,
	salesRepo repository.SalesRepository,
	wastageRepo repository.WastageRepository,
	alertRepo repository.AlertRepository,
	food *entity.FoodItem,
	date time.Time,
	now time.Time,
) error {
	if food.MinStockLevel <= 0 {
		return nil
	}
	produced, err := prodRepo.TotalQuantity(ctx, food.ID)
	if err != nil {
		return err
	}
	sold, err := salesRepo.TotalQuantity(ctx, food.ID)
	if err != nil {
		return err
	}
	wasted, err := wastageRepo.TotalQuantity(ctx, food.ID)
	if err != nil {
		return err
	}
	stock := produced - sold - wasted
	if stock >= food.MinStockLevel {
		return nil
	}
	msg := fmt.Sprintf("Low stock for %s: %d remaining, minimum is %d",
		food.Name, stock, food.MinStockLevel)
	_, err = uc.upsertAlert(ctx, alertRepo, food, date, entity.AlertTypeLowStock, msg,
		decimal.Zero, uc.policy.LowStockSeverity, now)
	return err
}

// upsertAlert aplica el invariante de deduplicación: a lo sumo una alerta no
// resuelta por (food, fecha, tipo). Si existe, actualiza la fila en sitio.
func (uc *SubmitUseCase) upsertAlert(
	ctx context.Context,
	alertRepo repository.AlertRepository,
	food *entity.FoodItem,
	date time.Time,
	alertType, msg string,
	pct decimal.Decimal,
	severity string,
	now time.Time,
) (*entity.Alert, error) {
	existing, err := alertRepo.GetUnresolved(ctx, food.ID, date, alertType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Message = msg
		existing.WastagePercentage = pct
		existing.Severity = severity
		if err := alertRepo.UpdateEvaluation(ctx, existing); err != nil {
			return nil, err
		}
		existing.FoodName = food.Name
		return existing, nil
	}
	alert := &entity.Alert{
		ID:                uuid.New().String(),
		FoodID:            food.ID,
		FoodName:          food.Name,
		AlertDate:         date,
		Type:              alertType,
		Message:           msg,
		WastagePercentage: pct,
		Severity:          severity,
		CreatedAt:         now,
	}
	if err := alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (uc *SubmitUseCase) staffOrDefault(staffID string) string {
	if staffID == "" {
		return uc.policy.DefaultStaffID
	}
	return staffID
}

func buildDerivedResponse(food *entity.FoodItem, date time.Time, state derivedState, alert *entity.Alert) *dto.DerivedStateResponse {
	return &dto.DerivedStateResponse{
		FoodID:            food.ID,
		FoodName:          food.Name,
		Date:              date.Format("2006-01-02"),
		QuantityPrepared:  state.Prepared,
		QuantitySold:      state.Sold,
		QuantityWasted:    state.Wasted,
		WastageExplicit:   state.Explicit,
		ProductionCost:    state.Cost,
		SalesRevenue:      state.Revenue,
		WasteValue:        state.WasteValue,
		WastagePercentage: state.Percentage,
		Alert:             dto.AlertFromEntity(alert),
	}
}

// parseDay interpreta una fecha calendario YYYY-MM-DD como medianoche UTC.
func parseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q, formato YYYY-MM-DD: %w", s, domain.ErrValidation)
	}
	return d.UTC(), nil
}

// validClock acepta vacío o una hora "HH:MM".
func validClock(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
