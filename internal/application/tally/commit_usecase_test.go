package tally_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktally-api/internal/application/dto"
	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/entity"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	"github.com/jhoicas/stocktally-api/internal/domain/tally"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeAdjustmentRepo acumula los registros de ajuste creados.
type fakeAdjustmentRepo struct {
	created []*entity.StockAdjustment
}

func (f *fakeAdjustmentRepo) Create(adj *entity.StockAdjustment) error {
	f.created = append(f.created, adj)
	return nil
}

func (f *fakeAdjustmentRepo) ListByItem(string, int, int) ([]*entity.StockAdjustment, error) {
	return nil, nil
}

// fakeTxRunner simula la transacción por entrada: si fn falla, el ajuste
// insertado en esa corrida se descarta (rollback).
type fakeTxRunner struct {
	items *fakeItemRepo
	adjs  *fakeAdjustmentRepo
}

func (f *fakeTxRunner) RunEntry(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	before := len(f.adjs.created)
	if err := fn(f.items, f.adjs); err != nil {
		f.adjs.created = f.adjs.created[:before] // rollback del ajuste
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

// Tres entradas, una con cantidad viva que ya no coincide (cambio
// concurrente): exactamente dos aplicadas, la tercera intacta y reportada
// como conflicto, sin rollback de las aplicadas.
func TestCommit_ExitoParcial_DosDeTres(t *testing.T) {
	items := &fakeItemRepo{quantities: map[string]int64{
		"SH-0001": 5,
		"HA-0002": 3,
		"TA-0003": 40, // el preview vio 30; otro proceso ya la movió
	}}
	adjs := &fakeAdjustmentRepo{}
	uc := apptally.NewCommitUseCase(&fakeTxRunner{items: items, adjs: adjs})

	resp, err := uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{
		Entries: []dto.TallyCommitEntry{
			{ItemID: "SH-0001", CurrentQuantity: 5, NewQuantity: 8},
			{ItemID: "HA-0002", CurrentQuantity: 3, NewQuantity: 1},
			{ItemID: "TA-0003", CurrentQuantity: 30, NewQuantity: 25},
		},
	})

	require.NoError(t, err, "el éxito parcial no es un error del lote")
	assert.Equal(t, 2, resp.Applied)
	assert.Equal(t, 1, resp.Conflicts)
	assert.Equal(t, 0, resp.Failed)

	// Las dos hermanas quedaron escritas; la conflictiva no se tocó.
	assert.Equal(t, int64(8), items.quantities["SH-0001"])
	assert.Equal(t, int64(1), items.quantities["HA-0002"])
	assert.Equal(t, int64(40), items.quantities["TA-0003"], "la entrada en conflicto no debe mutar el artículo")

	require.Len(t, resp.Outcomes, 3)
	assert.Equal(t, dto.CommitOutcomeApplied, resp.Outcomes[0].Status)
	assert.Equal(t, dto.CommitOutcomeApplied, resp.Outcomes[1].Status)
	assert.Equal(t, dto.CommitOutcomeConflict, resp.Outcomes[2].Status)
	assert.Equal(t, "TA-0003", resp.Outcomes[2].ItemID)
}

// Cada entrada aplicada deja su registro de ajuste con valor anterior, nuevo
// y dirección (insumo del colaborador de auditoría).
func TestCommit_RegistraAjustePorEntradaAplicada(t *testing.T) {
	items := &fakeItemRepo{quantities: map[string]int64{"SH-0001": 5, "HA-0002": 3}}
	adjs := &fakeAdjustmentRepo{}
	uc := apptally.NewCommitUseCase(&fakeTxRunner{items: items, adjs: adjs})

	_, err := uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{
		Entries: []dto.TallyCommitEntry{
			{ItemID: "SH-0001", CurrentQuantity: 5, NewQuantity: 8},
			{ItemID: "HA-0002", CurrentQuantity: 3, NewQuantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, adjs.created, 2)
	first := adjs.created[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "SH-0001", first.ItemID)
	assert.Equal(t, int64(5), first.PreviousQty)
	assert.Equal(t, int64(8), first.NewQty)
	assert.Equal(t, int64(3), first.Difference)
	assert.Equal(t, tally.DirectionAdded, first.Direction)
	assert.Equal(t, "user-1", first.AppliedBy)

	second := adjs.created[1]
	assert.Equal(t, tally.DirectionWasted, second.Direction)
	assert.Equal(t, int64(-2), second.Difference)
}

// Conflicto: el registro de ajuste de esa entrada se revierte junto con la
// transacción; las aplicadas conservan el suyo.
func TestCommit_ConflictoNoDejaAjuste(t *testing.T) {
	items := &fakeItemRepo{quantities: map[string]int64{"SH-0001": 5, "TA-0003": 40}}
	adjs := &fakeAdjustmentRepo{}
	uc := apptally.NewCommitUseCase(&fakeTxRunner{items: items, adjs: adjs})

	resp, err := uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{
		Entries: []dto.TallyCommitEntry{
			{ItemID: "TA-0003", CurrentQuantity: 30, NewQuantity: 25},
			{ItemID: "SH-0001", CurrentQuantity: 5, NewQuantity: 6},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Applied)
	assert.Equal(t, 1, resp.Conflicts)
	require.Len(t, adjs.created, 1)
	assert.Equal(t, "SH-0001", adjs.created[0].ItemID)
}

// Lote vacío o entradas con valores negativos: ErrInvalidInput antes de tocar
// el almacén.
func TestCommit_LoteInvalido(t *testing.T) {
	items := &fakeItemRepo{quantities: map[string]int64{"SH-0001": 5}}
	uc := apptally.NewCommitUseCase(&fakeTxRunner{items: items, adjs: &fakeAdjustmentRepo{}})

	_, err := uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{
		Entries: []dto.TallyCommitEntry{{ItemID: "SH-0001", CurrentQuantity: 5, NewQuantity: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), items.quantities["SH-0001"])
}

// Entrada sin cambio (new == current): no es una entrada de reconciliación.
// Se rechaza el lote antes de tocar el almacén, jamás se registra un ajuste
// con diferencia cero.
func TestCommit_EntradaSinCambio_Invalida(t *testing.T) {
	items := &fakeItemRepo{quantities: map[string]int64{"SH-0001": 5}}
	adjs := &fakeAdjustmentRepo{}
	uc := apptally.NewCommitUseCase(&fakeTxRunner{items: items, adjs: adjs})

	_, err := uc.Commit(context.Background(), "user-1", dto.TallyCommitRequest{
		Entries: []dto.TallyCommitEntry{{ItemID: "SH-0001", CurrentQuantity: 5, NewQuantity: 5}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, adjs.created, "un no-op no debe dejar registro de ajuste")
	assert.Equal(t, int64(5), items.quantities["SH-0001"])
}
