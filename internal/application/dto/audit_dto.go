package dto

import (
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// AuditRecordDTO representación HTTP de un registro de auditoría.
type AuditRecordDTO struct {
	ID            string         `json:"id"`
	TableName     string         `json:"table_name"`
	RecordID      string         `json:"record_id"`
	Operation     string         `json:"operation"`
	OldValues     map[string]any `json:"old_values,omitempty"`
	NewValues     map[string]any `json:"new_values,omitempty"`
	ChangedFields []string       `json:"changed_fields"`
	StaffID       string         `json:"staff_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// AuditRecordFromEntity convierte la entidad de dominio a su DTO.
func AuditRecordFromEntity(r *entity.AuditRecord) *AuditRecordDTO {
	return &AuditRecordDTO{
		ID:            r.ID,
		TableName:     r.TableName,
		RecordID:      r.RecordID,
		Operation:     r.Operation,
		OldValues:     r.OldValues,
		NewValues:     r.NewValues,
		ChangedFields: r.ChangedFields,
		StaffID:       r.StaffID,
		CreatedAt:     r.CreatedAt,
	}
}
