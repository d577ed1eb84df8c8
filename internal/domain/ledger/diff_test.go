package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
)

func TestDiffFields_DiffSimetrico(t *testing.T) {
	oldVals := map[string]any{"quantity": 100, "notes": "a", "staff_id": "s1"}
	newVals := map[string]any{"quantity": 120, "notes": "a", "reason": "expired"}

	got := ledger.DiffFields(oldVals, newVals)
	assert.Equal(t, []string{"quantity", "reason", "staff_id"}, got,
		"cambiados, agregados y eliminados aparecen, ordenados; los iguales no")
}

func TestDiffFields_Insert(t *testing.T) {
	newVals := map[string]any{"b": 2, "a": 1}
	assert.Equal(t, []string{"a", "b"}, ledger.DiffFields(nil, newVals),
		"un INSERT reporta todos los campos nuevos")
}

func TestDiffFields_SinCambios(t *testing.T) {
	vals := map[string]any{"a": 1, "b": "x"}
	assert.Empty(t, ledger.DiffFields(vals, map[string]any{"a": 1, "b": "x"}))
}

func TestDiffFields_TiposNumericosEquivalentes(t *testing.T) {
	// La comparación es por representación: 1 (int) y "1" difieren de 2 pero no entre sí
	oldVals := map[string]any{"qty": 1}
	newVals := map[string]any{"qty": "1"}
	assert.Empty(t, ledger.DiffFields(oldVals, newVals))
}
