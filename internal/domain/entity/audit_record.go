package entity

import "time"

// Operaciones auditables.
const (
	AuditOpInsert = "INSERT"
	AuditOpUpdate = "UPDATE"
	AuditOpDelete = "DELETE"
)

// AuditRecord es el registro inmutable antes/después de una mutación comprometida.
// Se escribe dentro de la misma transacción que la mutación que lo origina: toda
// mutación visible tiene exactamente un registro, y ningún registro corresponde a
// una mutación que no llegó a commit. Nunca se actualiza ni se borra.
type AuditRecord struct {
	ID            string
	TableName     string
	RecordID      string
	Operation     string
	OldValues     map[string]any // campos ausentes se omiten (nil en INSERT)
	NewValues     map[string]any
	ChangedFields []string // diff simétrico campo a campo, ordenado
	StaffID       string
	CreatedAt     time.Time
}
