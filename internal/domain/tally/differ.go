package tally

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Diff valida cada fila cruda contra las cantidades vivas y produce las
// entradas de reconciliación más los errores por fila acumulados.
//
// Secuencia por fila (corta en la primera condición que aplique):
//  1. sin Item ID            -> se ignora (fila de plantilla en blanco)
//  2. New Stock Quantity vacío -> se ignora (sin cambio solicitado)
//  3. valor no numérico      -> RowError
//  4. valor negativo         -> RowError
//  5. Item ID desconocido    -> RowError
//  6. valor (piso) == cantidad viva -> se ignora (no-op, no es cambio ni error)
//
// liveQty debe ser una lectura fresca del almacén autoritativo tomada después
// de la subida del archivo; la columna Current Stock Quantity exportada nunca
// se consulta porque puede estar obsoleta.
//
// Diff es determinista: el mismo par (rows, liveQty) produce siempre el mismo
// conjunto de entradas, en el orden de las filas.
func Diff(rows []RawRow, liveQty map[string]int64) ([]Entry, []RowError) {
	entries := make([]Entry, 0, len(rows))
	var errs []RowError

	for _, row := range rows {
		itemID := strings.TrimSpace(row.Cells[ColItemID])
		if itemID == "" {
			continue
		}
		rawQty := strings.TrimSpace(row.Cells[ColNewQty])
		if rawQty == "" {
			continue
		}
		parsed, err := decimal.NewFromString(rawQty)
		if err != nil {
			errs = append(errs, RowError{RowNumber: row.Number, ItemID: itemID, Message: "la nueva cantidad no es un número"})
			continue
		}
		if parsed.IsNegative() {
			errs = append(errs, RowError{RowNumber: row.Number, ItemID: itemID, Message: "la nueva cantidad no puede ser negativa"})
			continue
		}
		current, ok := liveQty[itemID]
		if !ok {
			errs = append(errs, RowError{RowNumber: row.Number, ItemID: itemID, Message: "el artículo no existe en el catálogo"})
			continue
		}
		newQty := parsed.Floor().IntPart()
		if newQty == current {
			continue
		}
		diff := newQty - current
		direction := DirectionWasted
		if diff > 0 {
			direction = DirectionAdded
		}
		entries = append(entries, Entry{
			ItemID:     itemID,
			CurrentQty: current,
			NewQty:     newQty,
			Difference: diff,
			Direction:  direction,
		})
	}
	return entries, errs
}
