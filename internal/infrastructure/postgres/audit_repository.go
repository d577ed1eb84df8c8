package postgres

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: el registro de auditoría es inmutable.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de auditoría. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create inserta el registro antes/después. Los mapas viajan como JSONB;
// old_values queda NULL en los INSERT.
func (r *AuditRepo) Create(ctx context.Context, rec *entity.AuditRecord) error {
	query := `
		INSERT INTO audit_log (id, table_name, record_id, operation, old_values, new_values,
			changed_fields, staff_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.TableName, rec.RecordID, rec.Operation,
		jsonOrNil(rec.OldValues), jsonOrNil(rec.NewValues),
		rec.ChangedFields, rec.StaffID, rec.CreatedAt,
	)
	if err != nil {
		return translateErr("insert audit record", err)
	}
	return nil
}

// List devuelve registros más recientes primero, con filtro opcional por tabla lógica.
func (r *AuditRepo) List(ctx context.Context, tableName string, limit int) ([]*entity.AuditRecord, error) {
	query := `
		SELECT id, table_name, record_id, operation, old_values, new_values,
			changed_fields, COALESCE(staff_id, ''), created_at
		FROM audit_log
		WHERE ($1 = '' OR table_name = $1)
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, tableName, limit)
	if err != nil {
		return nil, translateErr("list audit records", err)
	}
	defer rows.Close()

	var records []*entity.AuditRecord
	for rows.Next() {
		var rec entity.AuditRecord
		var oldRaw, newRaw []byte
		if err := rows.Scan(
			&rec.ID, &rec.TableName, &rec.RecordID, &rec.Operation,
			&oldRaw, &newRaw, &rec.ChangedFields, &rec.StaffID, &rec.CreatedAt,
		); err != nil {
			return nil, translateErr("scan audit record", err)
		}
		if len(oldRaw) > 0 {
			if err := json.Unmarshal(oldRaw, &rec.OldValues); err != nil {
				return nil, translateErr("decode old_values", err)
			}
		}
		if len(newRaw) > 0 {
			if err := json.Unmarshal(newRaw, &rec.NewValues); err != nil {
				return nil, translateErr("decode new_values", err)
			}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// jsonOrNil serializa el mapa a JSONB, o NULL si está vacío.
func jsonOrNil(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}
