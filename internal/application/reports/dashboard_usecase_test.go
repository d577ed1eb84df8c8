package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/reports"
)

func TestDashboard_ResumenDelDia(t *testing.T) {
	repo := &reportRepoStub{
		dayPrepared: 300,
		daySold:     250,
		dayWasted:   50,
		dayCost:     decimal.RequireFromString("600.00"),
		dayRevenue:  decimal.RequireFromString("1250.00"),
		dayWaste:    decimal.RequireFromString("100.00"),
		unresolved:  4,
	}
	uc := reports.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), out.Date)
	assert.Equal(t, 300, out.TotalPrepared)
	assert.Equal(t, 250, out.TotalSold)
	assert.Equal(t, 50, out.TotalWasted)
	assert.Equal(t, 4, out.UnresolvedAlerts)
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("1250.00")))
	assert.True(t, out.WastagePercentage.Equal(decimal.RequireFromString("16.67")), "50 de 300")
}

func TestDashboard_DiaSinActividad(t *testing.T) {
	uc := reports.NewDashboardUseCase(&reportRepoStub{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.TotalPrepared)
	assert.True(t, out.WastagePercentage.IsZero())
	assert.Zero(t, out.UnresolvedAlerts)
}
