// Package excel implementa los adaptadores del archivo de intercambio del
// conteo físico (hoja .xlsx) sobre excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/domain/tally"
)

var _ apptally.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter serializa el snapshot a .xlsx: fila 1 con las seis etiquetas
// en orden fijo, una fila por artículo y New Stock Quantity en blanco.
type SnapshotWriter struct{}

// NewSnapshotWriter construye el escritor.
func NewSnapshotWriter() *SnapshotWriter {
	return &SnapshotWriter{}
}

// WriteSnapshot genera el archivo en memoria. Sin estilos: la hoja es un
// formulario de trabajo, no un reporte.
func (w *SnapshotWriter) WriteSnapshot(rows []tally.SnapshotRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, label := range tally.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{row.ItemID, row.SupplierRef, row.Details, row.Dimensions, row.CurrentQty, ""}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
