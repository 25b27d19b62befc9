package repository

import "github.com/jhoicas/stocktally-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para los registros de
// ajuste aplicados por el commit (insumo del colaborador de auditoría).
type AdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockAdjustment, error)
}
