package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comedor-api/internal/application/alerting"
	"github.com/jhoicas/Comedor-api/internal/application/catalog"
	"github.com/jhoicas/Comedor-api/internal/application/ledger"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ alerting.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	foodRepo repository.FoodItemRepository,
	prodRepo repository.ProductionRepository,
	salesRepo repository.SalesRepository,
	wastageRepo repository.WastageRepository,
	alertRepo repository.AlertRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translateErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	foodRepo := NewFoodItemRepository(tx)
	prodRepo := NewProductionRepository(tx)
	salesRepo := NewSalesRepository(tx)
	wastageRepo := NewWastageRepository(tx)
	alertRepo := NewAlertRepository(tx)
	auditRepo := NewAuditRepository(tx)

	if err := fn(foodRepo, prodRepo, salesRepo, wastageRepo, alertRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return translateErr("commit transaction", err)
	}
	return nil
}
