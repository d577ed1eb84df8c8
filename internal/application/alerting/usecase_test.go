package alerting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/alerting"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	appledger "github.com/jhoicas/Comedor-api/internal/application/ledger"
	"github.com/jhoicas/Comedor-api/internal/application/ledgertest"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	domledger "github.com/jhoicas/Comedor-api/internal/domain/ledger"
)

func seedAlert(store *ledgertest.Store, id string) {
	store.Alerts.Alerts = append(store.Alerts.Alerts, &entity.Alert{
		ID:                id,
		FoodID:            "food-1",
		FoodName:          "Sopa de lentejas",
		AlertDate:         time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		Type:              entity.AlertTypeHighWastage,
		Message:           "High wastage for Sopa de lentejas on 2026-08-25: 40% of production wasted",
		WastagePercentage: decimal.NewFromInt(40),
		Severity:          entity.SeverityHigh,
		CreatedAt:         time.Now().UTC(),
	})
}

func TestResolve_UnSoloSentido(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedAlert(store, "alert-1")
	uc := alerting.NewUseCase(store, store.Alerts, 500)

	out, err := uc.Resolve(ctx, "alert-1", dto.ResolveAlertRequest{
		ResolvedBy:      "staff-9",
		ResolutionNotes: "se ajustó la producción del día siguiente",
	})
	require.NoError(t, err)
	assert.True(t, out.IsResolved)
	require.NotNil(t, out.ResolvedBy)
	assert.Equal(t, "staff-9", *out.ResolvedBy)
	assert.NotNil(t, out.ResolvedAt)

	audit := store.Audit.ByTable("wastage_alerts")
	require.Len(t, audit, 1, "la resolución manual queda auditada")
	assert.Equal(t, entity.AuditOpUpdate, audit[0].Operation)
	assert.Equal(t, "staff-9", audit[0].StaffID)
	assert.Contains(t, audit[0].ChangedFields, "is_resolved")
	assert.Contains(t, audit[0].ChangedFields, "resolved_by")

	// Resolver dos veces es conflicto y no escribe nada más
	_, err = uc.Resolve(ctx, "alert-1", dto.ResolveAlertRequest{ResolvedBy: "staff-9"})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, store.Audit.ByTable("wastage_alerts"), 1)
}

func TestResolve_Errores(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	seedAlert(store, "alert-1")
	uc := alerting.NewUseCase(store, store.Alerts, 500)

	_, err := uc.Resolve(ctx, "no-existe", dto.ResolveAlertRequest{ResolvedBy: "staff-9"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Resolve(ctx, "alert-1", dto.ResolveAlertRequest{})
	require.ErrorIs(t, err, domain.ErrValidation, "resolved_by es obligatorio")

	assert.Empty(t, store.Audit.Records, "los intentos fallidos no dejan auditoría")
}

func TestResolve_NuevaDeteccionGeneraAlertaIndependiente(t *testing.T) {
	ctx := context.Background()
	store := ledgertest.NewStore()
	store.Foods.Items["food-1"] = &entity.FoodItem{
		ID: "food-1", Name: "Sopa de lentejas",
		CostPerUnit:         decimal.RequireFromString("2.00"),
		SellingPricePerUnit: decimal.RequireFromString("5.00"),
		IsActive:            true,
	}
	submit := appledger.NewSubmitUseCase(store, appledger.Policy{
		Thresholds:       domledger.DefaultThresholds(),
		LowStockSeverity: entity.SeverityMedium,
		DefaultStaffID:   "staff-default",
	})
	resolver := alerting.NewUseCase(store, store.Alerts, 500)

	// Primera detección: 20% de merma implícita
	_, err := submit.SubmitProduction(ctx, dto.SubmitProductionRequest{FoodID: "food-1", Date: "2026-08-25", QuantityPrepared: 100})
	require.NoError(t, err)
	state, err := submit.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: "2026-08-25", QuantitySold: 80})
	require.NoError(t, err)
	require.NotNil(t, state.Alert)
	firstID := state.Alert.ID

	_, err = resolver.Resolve(ctx, firstID, dto.ResolveAlertRequest{ResolvedBy: "staff-9"})
	require.NoError(t, err)

	// La clave vuelve a disparar: la alerta resuelta no revive, nace otra
	state, err = submit.SubmitSales(ctx, dto.SubmitSalesRequest{FoodID: "food-1", Date: "2026-08-25", QuantitySold: 40})
	require.NoError(t, err)
	require.NotNil(t, state.Alert)
	assert.NotEqual(t, firstID, state.Alert.ID)

	resolved, err := resolver.List(ctx, true, 100)
	require.NoError(t, err)
	live, err := resolver.List(ctx, false, 100)
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
	assert.Len(t, live, 1)
}
