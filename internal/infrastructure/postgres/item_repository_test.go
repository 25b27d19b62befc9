package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	"github.com/jhoicas/stocktally-api/internal/infrastructure/postgres"
)

// errStop corta la ejecución después de capturar la consulta; estos tests
// verifican el SQL emitido, no filas.
var errStop = errors.New("captura de consulta")

// capturingQuerier registra el último SQL con sus argumentos y falla siempre.
type capturingQuerier struct {
	sql  string
	args []any
}

func (c *capturingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, errStop
}

func (c *capturingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, errStop
}

func (c *capturingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return errStop }

// El export construye el filtro sin Limit/Offset; ese cero NUNCA debe llegar
// a PostgreSQL como LIMIT 0 (devolvería cero filas y el snapshot jamás
// saldría). Limit 0 se traduce a "sin límite" vía NULLIF.
func TestListByFilter_LimitCero_NoTruncaElExport(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewItemRepository(q)

	_, err := repo.ListByFilter(repository.ItemFilter{Category: "sheet"})
	require.ErrorIs(t, err, errStop)

	assert.Contains(t, q.sql, "LIMIT NULLIF($3, 0)",
		"Limit 0 debe anular el límite, no enviarse literal")
	assert.NotContains(t, q.sql, "LIMIT $3")
	require.Len(t, q.args, 4)
	assert.Equal(t, 0, q.args[2])
}

// El listado paginado del catálogo sí envía su límite tal cual.
func TestListByFilter_ConLimite_LoEnvia(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewItemRepository(q)

	_, err := repo.ListByFilter(repository.ItemFilter{Limit: 20, Offset: 40})
	require.ErrorIs(t, err, errStop)

	require.Len(t, q.args, 4)
	assert.Equal(t, 20, q.args[2])
	assert.Equal(t, 40, q.args[3])
}

// Un límite negativo se normaliza a "sin límite" antes de tocar la base.
func TestListByFilter_LimiteNegativo_SeNormaliza(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewItemRepository(q)

	_, err := repo.ListByFilter(repository.ItemFilter{Limit: -1})
	require.ErrorIs(t, err, errStop)

	require.Len(t, q.args, 4)
	assert.Equal(t, 0, q.args[2])
}

// La verificación optimista condiciona el UPDATE por id Y cantidad esperada.
func TestUpdateQuantityChecked_CondicionaPorCantidad(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewItemRepository(q)

	_, err := repo.UpdateQuantityChecked("SH-0001", 5, 8)
	require.ErrorIs(t, err, errStop)

	assert.Contains(t, q.sql, "WHERE id = $1 AND quantity = $2")
	assert.Equal(t, []any{"SH-0001", int64(5), int64(8)}, q.args)
}
