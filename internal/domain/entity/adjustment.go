package entity

import "time"

// StockAdjustment registra un cambio de cantidad aplicado por el commit del
// conteo físico. Es la información mínima (artículo, valor anterior, valor
// nuevo) que el colaborador de auditoría externo necesita por cada cambio.
type StockAdjustment struct {
	ID          string // uuid
	ItemID      string
	PreviousQty int64
	NewQty      int64
	Difference  int64  // NewQty - PreviousQty, con signo
	Direction   string // tally.DirectionAdded | tally.DirectionWasted
	AppliedBy   string // UserID del operador
	AppliedAt   time.Time
}
