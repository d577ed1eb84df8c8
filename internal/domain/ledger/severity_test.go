package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
)

func TestClassifySeverity_Bandas(t *testing.T) {
	th := ledger.DefaultThresholds()

	cases := []struct {
		pct       string
		severity  string
		triggered bool
	}{
		{"0", "", false},
		{"9.99", "", false},
		{"10", entity.SeverityMedium, true}, // borde inferior de medium
		{"24.99", entity.SeverityMedium, true},
		{"25", entity.SeverityHigh, true}, // borde inferior de high
		{"49.99", entity.SeverityHigh, true},
		{"50", entity.SeverityCritical, true}, // borde inferior de critical
		{"100", entity.SeverityCritical, true},
	}
	for _, tc := range cases {
		severity, triggered := ledger.ClassifySeverity(decimal.RequireFromString(tc.pct), th)
		assert.Equal(t, tc.triggered, triggered, "porcentaje %s", tc.pct)
		assert.Equal(t, tc.severity, severity, "porcentaje %s", tc.pct)
	}
}

func TestClassifySeverity_UmbralesConfigurables(t *testing.T) {
	th := ledger.Thresholds{
		MediumPct:   decimal.NewFromInt(5),
		HighPct:     decimal.NewFromInt(15),
		CriticalPct: decimal.NewFromInt(30),
	}
	severity, triggered := ledger.ClassifySeverity(decimal.NewFromInt(20), th)
	assert.True(t, triggered)
	assert.Equal(t, entity.SeverityHigh, severity, "las bandas vienen de configuración, no de constantes")
}
