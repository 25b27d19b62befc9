package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/entity"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL
// (usable con pool o tx). Se inserta dentro de la misma transacción que la
// escritura optimista de cantidad.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste un registro de ajuste aplicado.
func (r *AdjustmentRepo) Create(adj *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, item_id, previous_qty, new_qty, difference, direction, applied_by, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		adj.ID, adj.ItemID, adj.PreviousQty, adj.NewQty,
		adj.Difference, adj.Direction, adj.AppliedBy, adj.AppliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial de ajustes de un artículo, más reciente primero.
func (r *AdjustmentRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, item_id, previous_qty, new_qty, difference, direction, applied_by, applied_at
		FROM stock_adjustments
		WHERE item_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(&a.ID, &a.ItemID, &a.PreviousQty, &a.NewQty, &a.Difference, &a.Direction, &a.AppliedBy, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	return out, nil
}
