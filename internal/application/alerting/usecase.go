package alerting

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

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La resolución de una alerta y su registro de auditoría se confirman juntos.
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

// UseCase lista y resuelve alertas. La resolución es de un solo sentido:
// una alerta resuelta jamás vuelve a estar activa; una nueva detección
// sobre la misma clave genera una alerta independiente.
type UseCase struct {
	txRunner  TxRunner
	alertRepo repository.AlertRepository
	maxLimit  int
}

// NewUseCase construye el caso de uso. alertRepo es el repositorio sobre el pool
// para lecturas; las resoluciones corren dentro del txRunner.
func NewUseCase(txRunner TxRunner, alertRepo repository.AlertRepository, maxLimit int) *UseCase {
	return &UseCase{txRunner: txRunner, alertRepo: alertRepo, maxLimit: maxLimit}
}

// Resolve marca una alerta como resuelta con los metadatos del operador.
// ErrNotFound si no existe, ErrConflict si ya estaba resuelta; en ambos
// casos no se escribe nada, ni siquiera auditoría.
func (uc *UseCase) Resolve(ctx context.Context, alertID string, in dto.ResolveAlertRequest) (*dto.AlertDTO, error) {
	if alertID == "" || in.ResolvedBy == "" {
		return nil, fmt.Errorf("alert_id y resolved_by requeridos: %w", domain.ErrValidation)
	}

	var resolved *entity.Alert
	err := uc.txRunner.Run(ctx, func(
		_ repository.FoodItemRepository,
		_ repository.ProductionRepository,
		_ repository.SalesRepository,
		_ repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error {
		alert, err := alertRepo.GetByID(ctx, alertID)
		if err != nil {
			return err
		}
		if alert.IsResolved {
			return fmt.Errorf("la alerta ya está resuelta: %w", domain.ErrConflict)
		}

		now := time.Now().UTC()
		oldVals := alertValues(alert)

		alert.IsResolved = true
		alert.ResolvedBy = &in.ResolvedBy
		alert.ResolvedAt = &now
		alert.ResolutionNotes = in.ResolutionNotes
		if err := alertRepo.MarkResolved(ctx, alert); err != nil {
			return err
		}

		if err := auditRepo.Create(ctx, &entity.AuditRecord{
			ID:            uuid.New().String(),
			TableName:     "wastage_alerts",
			RecordID:      alert.ID,
			Operation:     entity.AuditOpUpdate,
			OldValues:     oldVals,
			NewValues:     alertValues(alert),
			ChangedFields: ledger.DiffFields(oldVals, alertValues(alert)),
			StaffID:       in.ResolvedBy,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		resolved = alert
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.AlertFromEntity(resolved), nil
}

// List devuelve alertas por estado de resolución, más recientes primero.
func (uc *UseCase) List(ctx context.Context, resolved bool, limit int) ([]*dto.AlertDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}
	alerts, err := uc.alertRepo.List(ctx, resolved, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertFromEntity(a))
	}
	return out, nil
}

// alertValues serializa la alerta como mapa antes/después para auditoría.
func alertValues(a *entity.Alert) map[string]any {
	resolvedBy := ""
	if a.ResolvedBy != nil {
		resolvedBy = *a.ResolvedBy
	}
	resolvedAt := ""
	if a.ResolvedAt != nil {
		resolvedAt = a.ResolvedAt.Format(time.RFC3339)
	}
	return map[string]any{
		"food_id":            a.FoodID,
		"alert_date":         a.AlertDate.Format("2006-01-02"),
		"alert_type":         a.Type,
		"message":            a.Message,
		"wastage_percentage": a.WastagePercentage.String(),
		"severity":           a.Severity,
		"is_resolved":        a.IsResolved,
		"resolved_by":        resolvedBy,
		"resolved_at":        resolvedAt,
		"resolution_notes":   a.ResolutionNotes,
	}
}
