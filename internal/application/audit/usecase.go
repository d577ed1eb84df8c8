package audit

import (
	"context"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// UseCase sirve la consulta del registro de auditoría. Solo lectura:
// el registro es inmutable y únicamente lo escribe el motor de derivación.
type UseCase struct {
	auditRepo repository.AuditRepository
	maxLimit  int
}

// NewUseCase construye el caso de uso.
func NewUseCase(auditRepo repository.AuditRepository, maxLimit int) *UseCase {
	return &UseCase{auditRepo: auditRepo, maxLimit: maxLimit}
}

// List devuelve registros de auditoría, más recientes primero, con filtro
// opcional por tabla lógica.
func (uc *UseCase) List(ctx context.Context, tableName string, limit int) ([]*dto.AuditRecordDTO, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}
	records, err := uc.auditRepo.List(ctx, tableName, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AuditRecordFromEntity(r))
	}
	return out, nil
}
