package repository

import (
	"context"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// AuditRepository define el puerto del registro de auditoría: solo inserción
// y lectura. No existe Update ni Delete; el registro es inmutable por diseño.
type AuditRepository interface {
	Create(ctx context.Context, rec *entity.AuditRecord) error
	List(ctx context.Context, tableName string, limit int) ([]*entity.AuditRecord, error)
}
