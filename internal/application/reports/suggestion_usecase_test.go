package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/ledgertest"
	"github.com/jhoicas/Comedor-api/internal/application/reports"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// reportRepoStub implementa el puerto analítico con datos fijos; captura los
// rangos recibidos para verificar la ventana consultada.
type reportRepoStub struct {
	samples    []repository.DaySample
	weeklyRows []repository.WeeklySummaryRow
	gotFrom    time.Time
	gotTo      time.Time

	dayPrepared, daySold, dayWasted int
	dayCost, dayRevenue, dayWaste   decimal.Decimal
	unresolved                      int
}

var _ repository.ReportRepository = (*reportRepoStub)(nil)

func (s *reportRepoStub) GetDailyLedger(context.Context, time.Time, time.Time, int) ([]repository.DailyLedgerRow, error) {
	return nil, nil
}

func (s *reportRepoStub) GetWeeklySummary(_ context.Context, from, to time.Time) ([]repository.WeeklySummaryRow, error) {
	s.gotFrom, s.gotTo = from, to
	return s.weeklyRows, nil
}

func (s *reportRepoStub) GetWindowSamples(_ context.Context, _ string, from, to time.Time) ([]repository.DaySample, error) {
	s.gotFrom, s.gotTo = from, to
	return s.samples, nil
}

func (s *reportRepoStub) GetDayTotals(context.Context, time.Time) (int, int, int, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	return s.dayPrepared, s.daySold, s.dayWasted, s.dayCost, s.dayRevenue, s.dayWaste, nil
}

func (s *reportRepoStub) CountUnresolvedAlerts(context.Context) (int, error) {
	return s.unresolved, nil
}

func suggestionConfig() reports.SuggestionConfig {
	return reports.SuggestionConfig{WindowDays: 7, MinSamples: 3, MaxMargin: 0.25}
}

func seedCatalog() *ledgertest.FoodRepo {
	foods := ledgertest.NewFoodRepo()
	foods.Items["food-1"] = &entity.FoodItem{
		ID: "food-1", Name: "Arepa de queso",
		CostPerUnit:         decimal.RequireFromString("1.50"),
		SellingPricePerUnit: decimal.RequireFromString("4.00"),
		IsActive:            true,
	}
	return foods
}

func sample(day string, prepared, sold, wasted int) repository.DaySample {
	d, _ := time.Parse("2006-01-02", day)
	return repository.DaySample{Date: d, QuantityPrepared: prepared, QuantitySold: sold, QuantityWasted: wasted}
}

func TestSuggest_DatosInsuficientes(t *testing.T) {
	ctx := context.Background()
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-29", 100, 80, 20),
		sample("2026-08-30", 100, 90, 10),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.False(t, out.SufficientData, "dos días no bastan con mínimo de tres")
	assert.Equal(t, 2, out.SampleDays)
	assert.Zero(t, out.SuggestedQuantity)
	assert.NotEmpty(t, out.Message, "el marcador explica por qué no hay sugerencia")
}

func TestSuggest_VentasEstables(t *testing.T) {
	ctx := context.Background()
	// Venta constante de 100 con 20 de merma sobre 120 producidos cada día
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-28", 120, 100, 20),
		sample("2026-08-29", 120, 100, 20),
		sample("2026-08-30", 120, 100, 20),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.True(t, out.SufficientData)
	assert.True(t, out.AvgDailySales.Equal(decimal.RequireFromString("100")))
	assert.True(t, out.SalesVariability.IsZero(), "venta constante no lleva margen")
	assert.True(t, out.WasteFraction.Equal(decimal.RequireFromString("0.1667")), "cada día merma 20 de 120: ratio 1/6")
	// 100 × 1.0 × (1 − 1/6) redondea a 83
	assert.Equal(t, 83, out.SuggestedQuantity)
}

func TestSuggest_MermaPromedioDeRatiosDiarios(t *testing.T) {
	ctx := context.Background()
	// Producción sesgada: un día chico con merma casi total y dos días grandes
	// sin merma. Ratios diarios 0.9, 0, 0 → promedio 0.30; el ratio de las
	// sumas (9/210) subestimaría la merma habitual.
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-28", 10, 50, 9),
		sample("2026-08-29", 100, 50, 0),
		sample("2026-08-30", 100, 50, 0),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.True(t, out.WasteFraction.Equal(decimal.RequireFromString("0.3")),
		"la fracción es el promedio de los ratios diarios, obtuvo %s", out.WasteFraction)
	assert.Equal(t, 35, out.SuggestedQuantity, "50 × 1.0 × (1 − 0.30)")
}

func TestSuggest_DiasSinProduccionNoPesan(t *testing.T) {
	ctx := context.Background()
	// El día sin producción se excluye del promedio: no cuenta como merma cero
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-28", 0, 40, 0),
		sample("2026-08-29", 100, 40, 50),
		sample("2026-08-30", 100, 40, 50),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.True(t, out.WasteFraction.Equal(decimal.RequireFromString("0.5")),
		"promedio sobre los dos días con producción, obtuvo %s", out.WasteFraction)
	assert.Equal(t, 20, out.SuggestedQuantity, "40 × 1.0 × (1 − 0.5)")
}

func TestSuggest_MargenAcotado(t *testing.T) {
	ctx := context.Background()
	// Ventas volátiles: cv ≈ 0.41, muy por encima del tope de 0.25
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-28", 50, 50, 0),
		sample("2026-08-29", 100, 100, 0),
		sample("2026-08-30", 150, 150, 0),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.True(t, out.SalesVariability.Equal(decimal.RequireFromString("0.25")),
		"el coeficiente de variación se acota al máximo configurado")
	assert.Equal(t, 125, out.SuggestedQuantity, "100 × 1.25 sin merma")
}

func TestSuggest_SinVentas(t *testing.T) {
	ctx := context.Background()
	repo := &reportRepoStub{samples: []repository.DaySample{
		sample("2026-08-28", 50, 0, 50),
		sample("2026-08-29", 50, 0, 50),
		sample("2026-08-30", 50, 0, 50),
	}}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	out, err := uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	assert.Zero(t, out.SuggestedQuantity, "media cero sugiere cero, sin divisiones por cero")
	assert.True(t, out.AvgDailySales.IsZero())
}

func TestSuggest_VentanaYErrores(t *testing.T) {
	ctx := context.Background()
	repo := &reportRepoStub{}
	uc := reports.NewSuggestionUseCase(seedCatalog(), repo, suggestionConfig())

	_, err := uc.Suggest(ctx, "")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Suggest(ctx, "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Suggest(ctx, "food-1")
	require.NoError(t, err)
	// La ventana termina ayer: el día en curso está incompleto y no se consulta
	assert.Equal(t, 24*time.Hour*6, repo.gotTo.Sub(repo.gotFrom), "ventana de 7 días")
	today := time.Now().UTC()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	assert.True(t, repo.gotTo.Equal(today.AddDate(0, 0, -1)))
}
