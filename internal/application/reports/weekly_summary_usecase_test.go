package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/reports"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

func weeklyRow(foodID, name string, prepared, sold, wasted int, cost, revenue, wasteValue, pct string) repository.WeeklySummaryRow {
	return repository.WeeklySummaryRow{
		FoodID:            foodID,
		FoodName:          name,
		TotalPrepared:     prepared,
		TotalSold:         sold,
		TotalWasted:       wasted,
		TotalCost:         decimal.RequireFromString(cost),
		TotalRevenue:      decimal.RequireFromString(revenue),
		TotalWasteValue:   decimal.RequireFromString(wasteValue),
		WastagePercentage: decimal.RequireFromString(pct),
	}
}

func TestSummarize_TotalesGenerales(t *testing.T) {
	ctx := context.Background()
	repo := &reportRepoStub{weeklyRows: []repository.WeeklySummaryRow{
		weeklyRow("food-1", "Arroz con pollo", 500, 400, 100, "1000.00", "2000.00", "200.00", "20.00"),
		weeklyRow("food-2", "Sopa de lentejas", 300, 290, 10, "450.00", "870.00", "15.00", "3.33"),
	}}
	uc := reports.NewWeeklySummaryUseCase(repo)

	out, err := uc.Summarize(ctx, "2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", out.WeekStart)
	assert.Equal(t, "2026-08-30", out.WeekEnd, "la semana abarca siete días")
	assert.Equal(t, "2026-08-24", repo.gotFrom.Format("2006-01-02"))
	assert.Equal(t, "2026-08-30", repo.gotTo.Format("2006-01-02"))

	require.Len(t, out.Items, 2)
	assert.True(t, out.TotalCost.Equal(decimal.RequireFromString("1450.00")))
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("2870.00")))
	assert.True(t, out.TotalWasteValue.Equal(decimal.RequireFromString("215.00")))
	assert.True(t, out.GrossResult.Equal(decimal.RequireFromString("1420.00")), "resultado bruto = ingresos − costo")
	// 110 mermados de 800 producidos en total
	assert.True(t, out.WastagePercentage.Equal(decimal.RequireFromString("13.75")),
		"el porcentaje general sale de los totales, no del promedio de filas")
}

func TestSummarize_SemanaVacia(t *testing.T) {
	ctx := context.Background()
	uc := reports.NewWeeklySummaryUseCase(&reportRepoStub{})

	out, err := uc.Summarize(ctx, "2026-08-24")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.GrossResult.IsZero())
	assert.True(t, out.WastagePercentage.IsZero(), "sin producción el porcentaje es 0, no división por cero")
}

func TestSummarize_LunesPorDefecto(t *testing.T) {
	ctx := context.Background()
	uc := reports.NewWeeklySummaryUseCase(&reportRepoStub{})

	out, err := uc.Summarize(ctx, "")
	require.NoError(t, err)
	start, err := time.Parse("2006-01-02", out.WeekStart)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday(), "sin fecha se usa el lunes de la semana en curso")
}

func TestSummarize_FechaInvalida(t *testing.T) {
	_, err := reports.NewWeeklySummaryUseCase(&reportRepoStub{}).Summarize(context.Background(), "24-08-2026")
	require.ErrorIs(t, err, domain.ErrValidation)
}
