// Package tally contiene la lógica pura del conteo físico de inventario:
// proyección del snapshot, filas crudas importadas y el diff contra las
// cantidades vivas. Sin I/O; los adaptadores viven en infrastructure.
package tally

import "fmt"

// Etiquetas de las seis columnas del archivo de intercambio. El orden es fijo
// al exportar; al importar se resuelven por etiqueta, no por posición.
const (
	ColItemID      = "Item ID"
	ColSupplierRef = "Supplier Reference"
	ColDetails     = "Details"
	ColDimensions  = "Dimensions"
	ColCurrentQty  = "Current Stock Quantity"
	ColNewQty      = "New Stock Quantity"
)

// Header devuelve las etiquetas en el orden de exportación.
func Header() []string {
	return []string{ColItemID, ColSupplierRef, ColDetails, ColDimensions, ColCurrentQty, ColNewQty}
}

// Dirección de un cambio de cantidad.
const (
	DirectionAdded  = "ADDED"  // new > current
	DirectionWasted = "WASTED" // new < current
)

// SnapshotRow es la proyección desnormalizada de un artículo al momento de
// exportar. La tabla la edita el operador fuera del sistema; aquí nunca muta.
// Solo ItemID viaja de vuelta como ancla; Details y Dimensions son contexto
// decorativo para el operador.
type SnapshotRow struct {
	ItemID      string
	SupplierRef string
	Details     string
	Dimensions  string
	CurrentQty  int64
	// NewQty queda en blanco en el archivo: la llena el operador.
}

// RawRow es una fila leída del archivo subido: número de fila (1-based, como
// la ve el operador en la hoja) y celdas resueltas por etiqueta de columna.
type RawRow struct {
	Number int
	Cells  map[string]string
}

// RowError es un error de validación por fila. Se acumula, nunca aborta el
// lote; solo el caso "sin resultados" bloquea el avance.
type RowError struct {
	RowNumber int    `json:"row_number"`
	ItemID    string `json:"item_id,omitempty"`
	Message   string `json:"message"`
}

func (e RowError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("fila %d (%s): %s", e.RowNumber, e.ItemID, e.Message)
	}
	return fmt.Sprintf("fila %d: %s", e.RowNumber, e.Message)
}

// Entry es un cambio de cantidad validado y distinto de cero, pendiente de
// commit. CurrentQty proviene de la lectura viva al momento del diff, no de
// la columna exportada. Invariante: Difference != 0.
type Entry struct {
	ItemID     string `json:"item_id"`
	CurrentQty int64  `json:"current_quantity"`
	NewQty     int64  `json:"new_quantity"`
	Difference int64  `json:"difference"` // NewQty - CurrentQty, con signo
	Direction  string `json:"direction"`  // ADDED si Difference > 0, WASTED si < 0
}
