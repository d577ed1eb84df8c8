package ledger

import (
	"context"

	"github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que upsert, merma implícita, alertas y auditoría se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		foodRepo repository.FoodItemRepository,
		prodRepo repository.ProductionRepository,
		salesRepo repository.SalesRepository,
		wastageRepo repository.WastageRepository,
		alertRepo repository.AlertRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// Policy son los parámetros operativos del motor. Vienen de configuración,
// nunca de constantes escondidas en el código.
type Policy struct {
	Thresholds       ledger.Thresholds
	LowStockSeverity string
	DefaultStaffID   string
}
