package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
)

func TestImplicitWastage_Clamp(t *testing.T) {
	assert.Equal(t, 20, ledger.ImplicitWastage(100, 80), "producido 100 y vendido 80 deja 20 de merma")
	assert.Equal(t, 0, ledger.ImplicitWastage(80, 100), "vender más de lo producido nunca da merma negativa")
	assert.Equal(t, 0, ledger.ImplicitWastage(50, 50), "producido igual a vendido no deja merma")
	assert.Equal(t, 0, ledger.ImplicitWastage(0, 0), "sin actividad no hay merma")
}

func TestWasteValue_RedondeoADosDecimales(t *testing.T) {
	cost := decimal.RequireFromString("2.333")
	assert.True(t, ledger.WasteValue(3, cost).Equal(decimal.RequireFromString("7.00")),
		"3 × 2.333 = 6.999 redondea a 7.00")
	assert.True(t, ledger.WasteValue(0, cost).IsZero(), "merma cero vale cero")
}

func TestWastagePercentage(t *testing.T) {
	pct := ledger.WastagePercentage(20, 100)
	assert.True(t, pct.Equal(decimal.RequireFromString("20")), "20 de 100 es 20%%, obtuvo %s", pct)

	pct = ledger.WastagePercentage(1, 3)
	assert.True(t, pct.Equal(decimal.RequireFromString("33.33")), "1 de 3 redondea a 33.33, obtuvo %s", pct)
}

func TestWastagePercentage_SinProduccion(t *testing.T) {
	assert.True(t, ledger.WastagePercentage(10, 0).IsZero(),
		"sin producción no hay base: el porcentaje es 0, no división por cero")
	assert.True(t, ledger.WastagePercentage(10, -5).IsZero())
}
