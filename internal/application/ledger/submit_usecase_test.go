package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	appledger "github.com/jhoicas/Comedor-api/internal/application/ledger"
	"github.com/jhoicas/Comedor-api/internal/application/ledgertest"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	domledger "github.com/jhoicas/Comedor-api/internal/domain/ledger"
)

const testDay = "2026-08-25"

func defaultPolicy() appledger.Policy {
	return appledger.Policy{
		Thresholds:       domledger.DefaultThresholds(),
		LowStockSeverity: entity.SeverityMedium,
		DefaultStaffID:   "staff-default",
	}
}

func seedFood(store *ledgertest.Store, id, cost, price string, minStock int) {
	store.Foods.Items[id] = &entity.FoodItem{
		ID:                  id,
		Name:                "Arroz con pollo",
		CategoryID:          "cat-1",
		UnitID:              "unit-1",
		CostPerUnit:         decimal.RequireFromString(cost),
		SellingPricePerUnit: decimal.RequireFromString(price),
		MinStockLevel:       minStock,
		IsActive:            true,
	}
}

func TestSubmit_DerivacionCompleta(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	// Producción sola: toda la producción es merma implícita (100%)
	state, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{
		FoodID: "food-1", Date: testDay, QuantityPrepared: 100, StaffID: "staff-7",
	})
	require.NoError(t, err)
	assert.True(t, state.ProductionCost.Equal(decimal.RequireFromString("200.00")),
		"costo = 100 × 2.00 con foto de precio al commit, obtuvo %s", state.ProductionCost)
	assert.Equal(t, 100, state.QuantityWasted, "sin ventas, la merma implícita es toda la producción")
	require.NotNil(t, state.Alert)
	assert.Equal(t, entity.SeverityCritical, state.Alert.Severity)

	// Llegan las ventas: la merma implícita se recalcula y la alerta baja en sitio
	state, err = uc.SubmitSales(ctx, dto.SubmitSalesRequest{
		FoodID: "food-1", Date: testDay, QuantitySold: 80, StaffID: "staff-7",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, state.QuantityPrepared)
	assert.Equal(t, 80, state.QuantitySold)
	assert.Equal(t, 20, state.QuantityWasted)
	assert.False(t, state.WastageExplicit)
	assert.True(t, state.SalesRevenue.Equal(decimal.RequireFromString("400.00")), "ingreso = 80 × 5.00")
	assert.True(t, state.WasteValue.Equal(decimal.RequireFromString("40.00")), "merma = 20 × 2.00")
	assert.True(t, state.WastagePercentage.Equal(decimal.RequireFromString("20")))

	require.NotNil(t, state.Alert)
	assert.Equal(t, entity.AlertTypeHighWastage, state.Alert.Type)
	assert.Equal(t, entity.SeverityMedium, state.Alert.Severity, "20%% cae en la banda medium")

	live, err := store.Alerts.List(ctx, false, 100)
	require.NoError(t, err)
	assert.Len(t, live, 1, "la evaluación actualizó la alerta existente, no creó otra")
}

func TestSubmit_ReentregaEscalaLaMismaAlerta(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 100})
	require.NoError(t, err)
	_, err = uc.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: testDay, QuantitySold: 80})
	require.NoError(t, err)

	// Corrección de ventas a la baja: misma clave, last-write-wins, merma 60%
	state, err := uc.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: testDay, QuantitySold: 40})
	require.NoError(t, err)
	assert.Equal(t, 60, state.QuantityWasted)
	assert.True(t, state.WastagePercentage.Equal(decimal.RequireFromString("60")))

	live, err := store.Alerts.List(ctx, false, 100)
	require.NoError(t, err)
	require.Len(t, live, 1, "sigue habiendo una sola alerta no resuelta para la clave")
	assert.Equal(t, entity.SeverityCritical, live[0].Severity, "60%% escala la alerta existente a critical")
	assert.True(t, live[0].WastagePercentage.Equal(decimal.RequireFromString("60")))
}

func TestSubmit_MermaExplicitaPrevalece(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitWastage(ctx, dto.SubmitWastageRequest{
		FoodID: "food-1", Date: testDay, QuantityWasted: 5, Reason: entity.WastageReasonQualityIssue,
	})
	require.NoError(t, err)

	// La derivación implícita daría 100−80=20, pero la explícita de 5 manda
	_, err = uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 100})
	require.NoError(t, err)
	state, err := uc.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: testDay, QuantitySold: 80})
	require.NoError(t, err)

	assert.Equal(t, 5, state.QuantityWasted, "la merma explícita nunca se sobreescribe")
	assert.True(t, state.WastageExplicit)
	assert.True(t, state.WasteValue.Equal(decimal.RequireFromString("10.00")), "5 × 2.00")
	assert.Nil(t, state.Alert, "5%% está bajo el umbral: no hay alerta")
}

func TestSubmit_AuditoriaPorMutacion(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{
		FoodID: "food-1", Date: testDay, QuantityPrepared: 100, StaffID: "staff-7",
	})
	require.NoError(t, err)

	prodAudit := store.Audit.ByTable("daily_production")
	require.Len(t, prodAudit, 1)
	assert.Equal(t, entity.AuditOpInsert, prodAudit[0].Operation)
	assert.Nil(t, prodAudit[0].OldValues, "un INSERT no tiene estado anterior")
	assert.Equal(t, "staff-7", prodAudit[0].StaffID)
	assert.Contains(t, prodAudit[0].ChangedFields, "quantity_prepared")

	wastAudit := store.Audit.ByTable("daily_wastage")
	require.Len(t, wastAudit, 1, "la merma implícita derivada también se audita")
	assert.Equal(t, entity.AuditOpInsert, wastAudit[0].Operation)

	// Reentrega: la actualización queda auditada con sus campos cambiados exactos
	_, err = uc.SubmitProduction(ctx, dto.SubmitProductionRequest{
		FoodID: "food-1", Date: testDay, QuantityPrepared: 120, StaffID: "staff-7",
	})
	require.NoError(t, err)

	prodAudit = store.Audit.ByTable("daily_production")
	require.Len(t, prodAudit, 2, "ambas entregas dejan registro: last-write-wins no borra historia")
	assert.Equal(t, entity.AuditOpUpdate, prodAudit[1].Operation)
	assert.ElementsMatch(t, []string{"quantity_prepared", "production_cost"}, prodAudit[1].ChangedFields)
}

func TestSubmit_ValidacionNoEscribeNada(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	cases := []struct {
		name string
		run  func() error
	}{
		{"fecha inválida", func() error {
			_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: "25/08/2026", QuantityPrepared: 10})
			return err
		}},
		{"cantidad negativa", func() error {
			_, err := uc.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: testDay, QuantitySold: -1})
			return err
		}},
		{"razón desconocida", func() error {
			_, err := uc.SubmitWastage(ctx, dto.SubmitWastageRequest{FoodID: "food-1", Date: testDay, QuantityWasted: 5, Reason: "se lo comió el gato"})
			return err
		}},
		{"hora malformada", func() error {
			_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 10, StartTime: "9am"})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Empty(t, store.Production.Entries, "una entrega rechazada no deja rastro")
	assert.Empty(t, store.Sales.Entries)
	assert.Empty(t, store.Wastage.Entries)
	assert.Empty(t, store.Audit.Records, "los rechazos de validación jamás llegan a auditoría")
}

func TestSubmit_AlimentoInexistenteOInactivo(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	store.Foods.Items["food-1"].IsActive = false
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-x", Date: testDay, QuantityPrepared: 10})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 10})
	require.ErrorIs(t, err, domain.ErrValidation, "un alimento inactivo no acepta entregas")

	assert.Empty(t, store.Audit.Records)
}

func TestSubmit_StaffPorDefecto(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 0)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 10})
	require.NoError(t, err)

	entry, err := store.Production.Get(ctx, "food-1", mustDay(t, testDay))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "staff-default", entry.StaffID, "sin staff_id se usa el responsable configurado")
}

func TestSubmit_AlertaLowStock(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedFood(store, "food-1", "2.00", "5.00", 10)
	uc := appledger.NewSubmitUseCase(store, defaultPolicy())

	_, err := uc.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: testDay, QuantityPrepared: 5})
	require.NoError(t, err)
	_, err = uc.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: testDay, QuantitySold: 3})
	require.NoError(t, err)

	// Stock inferido: 5 − 3 − 2 = 0, bajo el mínimo de 10
	alert, err := store.Alerts.GetUnresolved(ctx, "food-1", mustDay(t, testDay), entity.AlertTypeLowStock)
	require.NoError(t, err)
	require.NotNil(t, alert, "el stock bajo el mínimo emite low_stock")
	assert.Equal(t, entity.SeverityMedium, alert.Severity, "la severidad de low_stock viene de configuración")
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.UTC()
}
