package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// DailyLedgerUseCase sirve la vista unificada del libro diario: por cada
// (alimento, fecha) con actividad, los hechos crudos y sus campos derivados.
type DailyLedgerUseCase struct {
	reportRepo repository.ReportRepository
	maxLimit   int
}

// NewDailyLedgerUseCase construye el caso de uso.
func NewDailyLedgerUseCase(reportRepo repository.ReportRepository, maxLimit int) *DailyLedgerUseCase {
	return &DailyLedgerUseCase{reportRepo: reportRepo, maxLimit: maxLimit}
}

// List devuelve el libro diario de [from, to], más reciente primero.
// Rango vacío: los últimos 7 días.
func (uc *DailyLedgerUseCase) List(ctx context.Context, fromStr, toStr string, limit int) ([]*dto.LedgerEntryDTO, error) {
	today := midnightUTC(time.Now())
	from := today.AddDate(0, 0, -6)
	to := today
	var err error
	if fromStr != "" {
		if from, err = parseReportDay(fromStr); err != nil {
			return nil, err
		}
	}
	if toStr != "" {
		if to, err = parseReportDay(toStr); err != nil {
			return nil, err
		}
	}
	if to.Before(from) {
		return nil, fmt.Errorf("rango invertido, from posterior a to: %w", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}

	rows, err := uc.reportRepo.GetDailyLedger(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerEntryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.LedgerEntryDTO{
			FoodID:            r.FoodID,
			FoodName:          r.FoodName,
			Date:              r.Date.Format("2006-01-02"),
			QuantityPrepared:  r.QuantityPrepared,
			QuantitySold:      r.QuantitySold,
			QuantityWasted:    r.QuantityWasted,
			WastageExplicit:   r.WastageExplicit,
			ProductionCost:    r.ProductionCost,
			SalesRevenue:      r.SalesRevenue,
			WasteValue:        r.WasteValue,
			WastagePercentage: r.WastagePercentage,
		})
	}
	return out, nil
}

func parseReportDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q, formato YYYY-MM-DD: %w", s, domain.ErrValidation)
	}
	return d.UTC(), nil
}
