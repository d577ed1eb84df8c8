package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// WeeklySummaryUseCase agrega una semana de actividad por alimento más los
// totales generales. La agregación por alimento la hace SQL; los totales
// se acumulan aquí sobre las filas ya agrupadas.
type WeeklySummaryUseCase struct {
	reportRepo repository.ReportRepository
}

// NewWeeklySummaryUseCase construye el caso de uso.
func NewWeeklySummaryUseCase(reportRepo repository.ReportRepository) *WeeklySummaryUseCase {
	return &WeeklySummaryUseCase{reportRepo: reportRepo}
}

// Summarize agrega la semana [start, start+6]. Con startDate vacío usa el lunes
// de la semana en curso. Alimentos sin actividad en la semana se omiten.
func (uc *WeeklySummaryUseCase) Summarize(ctx context.Context, startDate string) (*dto.WeeklySummaryResponse, error) {
	var start time.Time
	if startDate == "" {
		start = currentMonday(time.Now())
	} else {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, fmt.Errorf("start_date inválida %q, formato YYYY-MM-DD: %w", startDate, domain.ErrValidation)
		}
		start = parsed.UTC()
	}
	end := start.AddDate(0, 0, 6)

	rows, err := uc.reportRepo.GetWeeklySummary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.WeeklySummaryResponse{
		WeekStart:       start.Format("2006-01-02"),
		WeekEnd:         end.Format("2006-01-02"),
		Items:           make([]dto.WeeklySummaryItem, 0, len(rows)),
		TotalCost:       decimal.Zero,
		TotalRevenue:    decimal.Zero,
		TotalWasteValue: decimal.Zero,
	}
	var totalPrepared, totalWasted int
	for _, r := range rows {
		resp.Items = append(resp.Items, dto.WeeklySummaryItem{
			FoodID:            r.FoodID,
			FoodName:          r.FoodName,
			TotalPrepared:     r.TotalPrepared,
			TotalSold:         r.TotalSold,
			TotalWasted:       r.TotalWasted,
			TotalCost:         r.TotalCost,
			TotalRevenue:      r.TotalRevenue,
			TotalWasteValue:   r.TotalWasteValue,
			WastagePercentage: r.WastagePercentage,
		})
		totalPrepared += r.TotalPrepared
		totalWasted += r.TotalWasted
		resp.TotalCost = resp.TotalCost.Add(r.TotalCost)
		resp.TotalRevenue = resp.TotalRevenue.Add(r.TotalRevenue)
		resp.TotalWasteValue = resp.TotalWasteValue.Add(r.TotalWasteValue)
	}
	resp.GrossResult = resp.TotalRevenue.Sub(resp.TotalCost).Round(2)
	resp.WastagePercentage = ledger.WastagePercentage(totalWasted, totalPrepared)
	return resp, nil
}

// currentMonday devuelve el lunes de la semana del instante dado, medianoche UTC.
func currentMonday(t time.Time) time.Time {
	day := midnightUTC(t)
	offset := (int(day.Weekday()) + 6) % 7 // lunes=0 … domingo=6
	return day.AddDate(0, 0, -offset)
}
