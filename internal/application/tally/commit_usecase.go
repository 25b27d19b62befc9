package tally

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktally-api/internal/application/dto"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/entity"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	domaintally "github.com/jhoicas/stocktally-api/internal/domain/tally"
)

// CommitUseCase aplica el conjunto de entradas revisadas al almacén
// autoritativo. El lote se trata como operaciones independientes por
// artículo: una entrada rechazada por modificación concurrente no afecta a
// sus hermanas, y no hay rollback de lo ya aplicado.
type CommitUseCase struct {
	tx TxRunner
}

// NewCommitUseCase construye el caso de uso.
func NewCommitUseCase(tx TxRunner) *CommitUseCase {
	return &CommitUseCase{tx: tx}
}

// Commit aplica cada entrada en su propia transacción: escritura optimista de
// la cantidad (solo si la almacenada aún es current_quantity) más el registro
// de ajuste para el colaborador de auditoría, atómicos entre sí. Devuelve el
// resultado agregado; el éxito parcial es un resultado válido, no un error.
func (uc *CommitUseCase) Commit(ctx context.Context, userID string, in dto.TallyCommitRequest) (*dto.TallyCommitResponse, error) {
	if len(in.Entries) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, e := range in.Entries {
		if e.ItemID == "" || e.NewQuantity < 0 || e.CurrentQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		// Una entrada sin cambio no es una entrada de reconciliación: el
		// preview la suprime, y aceptarla aquí dejaría un ajuste con
		// diferencia cero.
		if e.NewQuantity == e.CurrentQuantity {
			return nil, domain.ErrInvalidInput
		}
	}

	resp := &dto.TallyCommitResponse{
		Outcomes: make([]dto.TallyCommitOutcome, 0, len(in.Entries)),
	}
	now := time.Now()

	for _, e := range in.Entries {
		err := uc.tx.RunEntry(ctx, func(
			itemRepo repository.ItemRepository,
			adjustmentRepo repository.AdjustmentRepository,
		) error {
			ok, err := itemRepo.UpdateQuantityChecked(e.ItemID, e.CurrentQuantity, e.NewQuantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrConflict
			}
			// Dirección y diferencia se recalculan aquí: el payload del
			// cliente no es autoritativo.
			diff := e.NewQuantity - e.CurrentQuantity
			direction := domaintally.DirectionWasted
			if diff > 0 {
				direction = domaintally.DirectionAdded
			}
			return adjustmentRepo.Create(&entity.StockAdjustment{
				ID:          uuid.New().String(),
				ItemID:      e.ItemID,
				PreviousQty: e.CurrentQuantity,
				NewQty:      e.NewQuantity,
				Difference:  diff,
				Direction:   direction,
				AppliedBy:   userID,
				AppliedAt:   now,
			})
		})
		switch {
		case err == nil:
			resp.Applied++
			resp.Outcomes = append(resp.Outcomes, dto.TallyCommitOutcome{
				ItemID: e.ItemID,
				Status: dto.CommitOutcomeApplied,
			})
		case errors.Is(err, domain.ErrConflict):
			resp.Conflicts++
			resp.Outcomes = append(resp.Outcomes, dto.TallyCommitOutcome{
				ItemID:  e.ItemID,
				Status:  dto.CommitOutcomeConflict,
				Message: "la cantidad cambió desde la revisión; vuelva a cargar el preview",
			})
		default:
			resp.Failed++
			resp.Outcomes = append(resp.Outcomes, dto.TallyCommitOutcome{
				ItemID:  e.ItemID,
				Status:  dto.CommitOutcomeFailed,
				Message: err.Error(),
			})
		}
	}
	return resp, nil
}
