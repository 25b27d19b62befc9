package repository

import (
	"context"

	"github.com/jhoicas/stocktally-api/internal/domain/entity"
)

// ItemFilter filtro para el listado de artículos (vista que alimenta el
// export). El filtrado/orden es responsabilidad de la vista, no del tally.
type ItemFilter struct {
	Category string // vacío = todas
	Search   string // sobre ID y atributos visibles
	Limit    int    // <= 0 = sin límite (el export necesita el conjunto completo)
	Offset   int
}

// ItemRepository define el puerto de lectura del catálogo autoritativo y la
// única mutación permitida a este subsistema: la escritura optimista de
// cantidad del commit.
type ItemRepository interface {
	GetByID(id string) (*entity.Item, error)
	ListByFilter(filter ItemFilter) ([]*entity.Item, error)

	// QuantitiesByItemIDs devuelve las cantidades al momento de la llamada para
	// los ids dados (ids desconocidos simplemente no aparecen en el mapa).
	// Es siempre una lectura viva, jamás una caché: el diff se rebasa aquí.
	QuantitiesByItemIDs(ctx context.Context, ids []string) (map[string]int64, error)

	// UpdateQuantityChecked escribe newQty solo si la cantidad almacenada aún
	// es expectedQty (verificación optimista). Devuelve false si la fila ya
	// cambió o no existe; el caller decide cómo reportar el conflicto.
	UpdateQuantityChecked(itemID string, expectedQty, newQty int64) (bool, error)
}
