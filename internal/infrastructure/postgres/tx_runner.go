package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

var _ apptally.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El commit
// del tally lo invoca una vez POR ENTRADA: cada par (update optimista,
// registro de ajuste) es atómico por sí mismo e independiente de sus
// hermanas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunEntry inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) RunEntry(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	adjustmentRepo := NewAdjustmentRepository(tx)

	if err := fn(itemRepo, adjustmentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
