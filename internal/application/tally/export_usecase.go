package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	domaintally "github.com/jhoicas/stocktally-api/internal/domain/tally"
)

// ExportUseCase genera el snapshot del conteo físico: una hoja de cálculo con
// los artículos filtrados, su cantidad al momento del export y la columna
// New Stock Quantity en blanco para que el operador la llene fuera de línea.
type ExportUseCase struct {
	itemRepo repository.ItemRepository
	writer   SnapshotWriter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(itemRepo repository.ItemRepository, writer SnapshotWriter) *ExportUseCase {
	return &ExportUseCase{itemRepo: itemRepo, writer: writer}
}

// Export lista los artículos según el filtro, proyecta una fila por artículo
// (orden preservado) y serializa el archivo. Un filtro sin resultados es una
// precondición de usuario (ErrNoItemsToExport), no un error interno.
// No muta nada en el servidor: el archivo vive solo en el cliente.
func (uc *ExportUseCase) Export(ctx context.Context, filter repository.ItemFilter) ([]byte, string, error) {
	items, err := uc.itemRepo.ListByFilter(filter)
	if err != nil {
		return nil, "", fmt.Errorf("listar artículos para export: %w", err)
	}
	if len(items) == 0 {
		return nil, "", domain.ErrNoItemsToExport
	}

	rows := make([]domaintally.SnapshotRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, domaintally.SnapshotRow{
			// ItemID pasa intacto: es la única ancla de ida y vuelta.
			ItemID:      item.ID,
			SupplierRef: item.FlattenSupplierRefs(),
			Details:     item.FlattenDetails(),
			Dimensions:  item.FlattenDimensions(),
			CurrentQty:  item.Quantity,
		})
	}

	data, err := uc.writer.WriteSnapshot(rows)
	if err != nil {
		return nil, "", fmt.Errorf("serializar snapshot: %w", err)
	}
	filename := fmt.Sprintf("stock_tally_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}
