package excel

import (
	"io"

	"github.com/xuri/excelize/v2"

	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/tally"
)

var _ apptally.SnapshotReader = (*SnapshotReader)(nil)

// SnapshotReader lee el archivo editado por el operador. Solo se considera la
// primera hoja; la fila 1 debe nombrar las columnas por etiqueta exacta (el
// orden puede variar, las celdas se resuelven por etiqueta).
type SnapshotReader struct{}

// NewSnapshotReader construye el lector.
func NewSnapshotReader() *SnapshotReader {
	return &SnapshotReader{}
}

// ReadSnapshot devuelve las filas de datos como mapas etiqueta→valor con el
// número de fila tal como lo ve el operador en la hoja (encabezado = 1).
//
// Fallas estructurales (archivo corrupto, sin hojas, sin las columnas ancla
// Item ID / New Stock Quantity) devuelven domain.ErrUnreadableFile. Una hoja
// válida con cero filas de datos NO es un error aquí: esa condición la
// reporta el diff, con su propio mensaje.
func (r *SnapshotReader) ReadSnapshot(src io.Reader) ([]tally.RawRow, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, domain.ErrUnreadableFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrUnreadableFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) == 0 {
		return nil, domain.ErrUnreadableFile
	}

	// Mapa etiqueta -> índice de columna según el encabezado subido.
	colByLabel := make(map[string]int, len(rows[0]))
	for idx, label := range rows[0] {
		for _, known := range tally.Header() {
			if label == known {
				colByLabel[known] = idx
				break
			}
		}
	}
	// Sin las columnas ancla no hay forma de re-asociar filas con artículos.
	if _, ok := colByLabel[tally.ColItemID]; !ok {
		return nil, domain.ErrUnreadableFile
	}
	if _, ok := colByLabel[tally.ColNewQty]; !ok {
		return nil, domain.ErrUnreadableFile
	}

	out := make([]tally.RawRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cells := make(map[string]string, len(colByLabel))
		for label, idx := range colByLabel {
			if idx < len(row) {
				cells[label] = row[idx]
			} else {
				// GetRows recorta celdas finales vacías.
				cells[label] = ""
			}
		}
		out = append(out, tally.RawRow{Number: i + 2, Cells: cells})
	}
	return out, nil
}
