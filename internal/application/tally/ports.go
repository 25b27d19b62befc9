package tally

import (
	"context"
	"io"

	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	domaintally "github.com/jhoicas/stocktally-api/internal/domain/tally"
)

// SnapshotWriter serializa las filas del snapshot al archivo de intercambio
// (hoja de cálculo con las seis columnas en orden fijo).
type SnapshotWriter interface {
	WriteSnapshot(rows []domaintally.SnapshotRow) ([]byte, error)
}

// SnapshotReader lee el archivo subido por el operador y devuelve las filas
// crudas resueltas por etiqueta de columna. Un archivo ilegible o sin las
// columnas ancla produce domain.ErrUnreadableFile.
type SnapshotReader interface {
	ReadSnapshot(src io.Reader) ([]domaintally.RawRow, error)
}

// TxRunner ejecuta fn dentro de una transacción de BD propia, pasando
// repositorios atados a esa tx. El commit del tally abre una transacción POR
// ENTRADA: cada ajuste se aplica o se rechaza de forma independiente, sin
// rollback compensatorio de las entradas ya aplicadas.
type TxRunner interface {
	RunEntry(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error) error
}
