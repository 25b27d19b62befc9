package tally

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/stocktally-api/internal/application/dto"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
	domaintally "github.com/jhoicas/stocktally-api/internal/domain/tally"
)

// PreviewUseCase parsea el archivo editado por el operador y calcula el diff
// contra las cantidades vivas del catálogo para la revisión previa al commit.
type PreviewUseCase struct {
	reader   SnapshotReader
	itemRepo repository.ItemRepository
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(reader SnapshotReader, itemRepo repository.ItemRepository) *PreviewUseCase {
	return &PreviewUseCase{reader: reader, itemRepo: itemRepo}
}

// Preview lee el archivo, toma una lectura FRESCA de cantidades por los ids
// presentes y ejecuta el diff. La columna Current Stock Quantity del archivo
// nunca se consulta: el export y la re-subida pueden estar separados por horas
// y otras operaciones pudieron mover stock en el intermedio.
//
// Errores distinguidos para el operador:
//   - domain.ErrUnreadableFile: archivo corrupto o sin columnas ancla
//     (permanece en el paso de subida).
//   - domain.ErrNoChanges: archivo válido pero sin cambios utilizables; la
//     respuesta acompaña los errores por fila encontrados.
func (uc *PreviewUseCase) Preview(ctx context.Context, src io.Reader) (*dto.TallyPreviewResponse, error) {
	rows, err := uc.reader.ReadSnapshot(src)
	if err != nil {
		return nil, err
	}

	liveQty, err := uc.itemRepo.QuantitiesByItemIDs(ctx, collectItemIDs(rows))
	if err != nil {
		return nil, fmt.Errorf("leer cantidades vivas: %w", err)
	}

	entries, rowErrors := domaintally.Diff(rows, liveQty)
	resp := &dto.TallyPreviewResponse{
		Entries:    entries,
		RowErrors:  rowErrors,
		EntryCount: len(entries),
		ErrorCount: len(rowErrors),
	}
	if len(entries) == 0 {
		// Condición bloqueante propia: "no hay cambios" se remedia llenando
		// más celdas, no subiendo otro archivo.
		return resp, domain.ErrNoChanges
	}
	return resp, nil
}

// collectItemIDs extrae los ids no vacíos del archivo (deduplicados) para la
// lectura de cantidades del catálogo.
func collectItemIDs(rows []domaintally.RawRow) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row.Cells[domaintally.ColItemID])
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
