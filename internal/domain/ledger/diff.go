package ledger

import (
	"fmt"
	"sort"
)

// DiffFields calcula el diff simétrico campo a campo entre dos fotos de una fila.
// Un campo presente en una sola de las fotos cuenta como cambiado. La comparación
// es por representación textual del valor, suficiente para los escalares del libro
// diario (string, int, bool, decimal, time). El resultado viene ordenado.
func DiffFields(oldVals, newVals map[string]any) []string {
	changed := make([]string, 0, len(newVals))
	for k, nv := range newVals {
		ov, ok := oldVals[k]
		if !ok || fmt.Sprint(ov) != fmt.Sprint(nv) {
			changed = append(changed, k)
		}
	}
	for k := range oldVals {
		if _, ok := newVals[k]; !ok {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}
