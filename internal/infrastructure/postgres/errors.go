package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Comedor-api/internal/domain"
)

// translateErr clasifica errores de PostgreSQL en los centinelas de dominio:
// 23505 → conflicto, resto de clase 23 → integridad, clase 08 y abortos de
// serialización/deadlock → transitorio (el cliente puede reintentar).
func translateErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return fmt.Errorf("%s: %s: %w", op, pgErr.Code, domain.ErrConflict)
		case strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%s: %s: %w", op, pgErr.Code, domain.ErrIntegrity)
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "57P01":
			return fmt.Errorf("%s: %s: %w", op, pgErr.Code, domain.ErrTransient)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
