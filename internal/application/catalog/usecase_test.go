package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/catalog"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/application/ledgertest"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

func newCatalogUseCase() (*catalog.UseCase, *ledgertest.Store) {
	store := ledgertest.NewStore()
	return catalog.NewUseCase(store, store.Foods, 500), store
}

func TestCreate_AltaAuditada(t *testing.T) {
	ctx := context.Background()
	uc, store := newCatalogUseCase()

	out, err := uc.Create(ctx, dto.CreateFoodItemRequest{
		Name:                "Jugo de lulo",
		CategoryID:          "cat-bebidas",
		UnitID:              "unit-vaso",
		CostPerUnit:         decimal.RequireFromString("0.899"),
		SellingPricePerUnit: decimal.RequireFromString("2.50"),
		MinStockLevel:       10,
		MaxStockLevel:       200,
	}, "staff-3")
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.IsActive, "un alta nace activa")
	assert.Equal(t, "0.9", out.CostPerUnit.String(), "el costo se normaliza a dos decimales")

	audit := store.Audit.ByTable("food_items")
	require.Len(t, audit, 1)
	assert.Equal(t, entity.AuditOpInsert, audit[0].Operation)
	assert.Equal(t, "staff-3", audit[0].StaffID)
	assert.Nil(t, audit[0].OldValues)
}

func TestCreate_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc, store := newCatalogUseCase()

	cases := []dto.CreateFoodItemRequest{
		{CategoryID: "c", UnitID: "u"}, // sin nombre
		{Name: "x", CategoryID: "c", UnitID: "u", CostPerUnit: decimal.RequireFromString("-1")},
		{Name: "x", CategoryID: "c", UnitID: "u", MinStockLevel: -5},
		{Name: "x", CategoryID: "c", UnitID: "u", MinStockLevel: 50, MaxStockLevel: 10},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in, "staff-3")
		require.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Empty(t, store.Audit.Records)
}

func TestUpdate_ParcialTipado(t *testing.T) {
	ctx := context.Background()
	uc, store := newCatalogUseCase()

	created, err := uc.Create(ctx, dto.CreateFoodItemRequest{
		Name: "Jugo de lulo", CategoryID: "cat-bebidas", UnitID: "unit-vaso",
		CostPerUnit:         decimal.RequireFromString("0.90"),
		SellingPricePerUnit: decimal.RequireFromString("2.50"),
	}, "staff-3")
	require.NoError(t, err)

	// Solo cambia el precio de venta; todo lo demás queda intacto
	price := decimal.RequireFromString("3.00")
	out, err := uc.Update(ctx, created.ID, dto.UpdateFoodItemRequest{SellingPricePerUnit: &price}, "staff-3")
	require.NoError(t, err)
	assert.Equal(t, "Jugo de lulo", out.Name)
	assert.True(t, out.SellingPricePerUnit.Equal(price))
	assert.True(t, out.CostPerUnit.Equal(created.CostPerUnit))

	audit := store.Audit.ByTable("food_items")
	require.Len(t, audit, 2)
	assert.Equal(t, entity.AuditOpUpdate, audit[1].Operation)
	assert.Equal(t, []string{"selling_price_per_unit"}, audit[1].ChangedFields,
		"el diff registra únicamente el campo tocado")
}

func TestUpdate_Errores(t *testing.T) {
	ctx := context.Background()
	uc, store := newCatalogUseCase()

	name := ""
	_, err := uc.Update(ctx, "food-1", dto.UpdateFoodItemRequest{Name: &name}, "staff-3")
	require.ErrorIs(t, err, domain.ErrValidation)

	ok := "Nuevo nombre"
	_, err = uc.Update(ctx, "no-existe", dto.UpdateFoodItemRequest{Name: &ok}, "staff-3")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, store.Audit.Records)
}
