package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// Thresholds son las bandas de severidad por porcentaje de merma.
// Son política configurable, no constantes: llegan desde pkg/config.
type Thresholds struct {
	MediumPct   decimal.Decimal // por defecto 10
	HighPct     decimal.Decimal // por defecto 25
	CriticalPct decimal.Decimal // por defecto 50
}

// DefaultThresholds devuelve las bandas por defecto: [10,25) medium, [25,50) high, ≥50 critical.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MediumPct:   decimal.NewFromInt(10),
		HighPct:     decimal.NewFromInt(25),
		CriticalPct: decimal.NewFromInt(50),
	}
}

// ClassifySeverity clasifica un porcentaje de merma contra las bandas.
// Devuelve (severidad, true) si corresponde alertar; (_, false) bajo la banda mínima.
func ClassifySeverity(pct decimal.Decimal, t Thresholds) (string, bool) {
	switch {
	case pct.GreaterThanOrEqual(t.CriticalPct):
		return entity.SeverityCritical, true
	case pct.GreaterThanOrEqual(t.HighPct):
		return entity.SeverityHigh, true
	case pct.GreaterThanOrEqual(t.MediumPct):
		return entity.SeverityMedium, true
	}
	return "", false
}
