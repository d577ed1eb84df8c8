package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen operativo del día en curso.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary agrega los totales de hoy y el conteo de alertas sin resolver.
// Las dos consultas corren en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	today := midnightUTC(time.Now())

	type totalsResult struct {
		prepared, sold, wasted int
		cost, revenue, waste   decimal.Decimal
		err                    error
	}
	type countResult struct {
		count int
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	alertsCh := make(chan countResult, 1)

	go func() {
		prepared, sold, wasted, cost, revenue, waste, err := uc.reportRepo.GetDayTotals(ctx, today)
		totalsCh <- totalsResult{prepared, sold, wasted, cost, revenue, waste, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountUnresolvedAlerts(ctx)
		alertsCh <- countResult{n, err}
	}()

	totals := <-totalsCh
	alerts := <-alertsCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales del día: %w", totals.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas sin resolver: %w", alerts.err)
	}

	return &dto.DashboardResponse{
		Date:              today.Format("2006-01-02"),
		TotalPrepared:     totals.prepared,
		TotalSold:         totals.sold,
		TotalWasted:       totals.wasted,
		TotalCost:         totals.cost.Round(2),
		TotalRevenue:      totals.revenue.Round(2),
		TotalWasteValue:   totals.waste.Round(2),
		WastagePercentage: ledger.WastagePercentage(totals.wasted, totals.prepared),
		UnresolvedAlerts:  alerts.count,
	}, nil
}
