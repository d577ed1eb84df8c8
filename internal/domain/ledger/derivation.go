// Package ledger contiene los servicios de dominio puros del libro diario:
// derivación de merma implícita, porcentaje de merma, clasificación de severidad
// y diff de auditoría. Era lógica de procedimientos almacenados y triggers;
// aquí es explícita y testeable sin base de datos.
package ledger

import "github.com/shopspring/decimal"

// ImplicitWastage deriva la merma implícita: max(producido − vendido, 0).
// Vender más de lo producido consume stock previo, nunca produce merma negativa.
func ImplicitWastage(produced, sold int) int {
	if produced <= sold {
		return 0
	}
	return produced - sold
}

// WasteValue valoriza una merma al costo unitario fotografiado: wasted × costPerUnit.
func WasteValue(wasted int, costPerUnit decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(wasted)).Mul(costPerUnit).Round(2)
}

// WastagePercentage calcula merma/producido × 100. Sin producción el porcentaje es 0:
// no hay base contra la cual medir la merma.
func WastagePercentage(wasted, produced int) decimal.Decimal {
	if produced <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(wasted)).
		Div(decimal.NewFromInt(int64(produced))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
