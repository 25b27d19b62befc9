package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktally-api/internal/domain/entity"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, category, attributes, supplier_refs, quantity, measurement_unit, price, created_at, updated_at`

// GetByID obtiene un artículo por su código. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// ListByFilter lista artículos por categoría y/o texto de búsqueda, ordenado
// por código. Limit <= 0 significa sin límite: el export del conteo debe
// cubrir el conjunto filtrado COMPLETO (paginarlo truncaría el snapshot), de
// ahí el NULLIF en vez de un LIMIT directo. El orden del listado es el orden
// del export.
func (r *ItemRepo) ListByFilter(filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR id ILIKE '%' || $2 || '%' OR attributes::text ILIKE '%' || $2 || '%')
		ORDER BY id
		LIMIT NULLIF($3, 0) OFFSET $4`
	limit := filter.Limit
	if limit < 0 {
		limit = 0
	}
	rows, err := r.q.Query(context.Background(), query, filter.Category, filter.Search, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// QuantitiesByItemIDs devuelve las cantidades vigentes AL MOMENTO DE LA
// LLAMADA para los ids dados. Ids inexistentes no aparecen en el mapa. Nunca
// cachea: es la lectura con la que el diff se rebasa tras la subida.
func (r *ItemRepo) QuantitiesByItemIDs(ctx context.Context, ids []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT id, quantity FROM items WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("quantities by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var qty int64
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scan quantity: %w", err)
		}
		out[id] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quantities by ids: %w", err)
	}
	return out, nil
}

// UpdateQuantityChecked escribe newQty solo si la cantidad almacenada sigue
// siendo expectedQty (verificación optimista en el WHERE). RowsAffected == 0
// significa conflicto concurrente o artículo inexistente: el caller decide.
func (r *ItemRepo) UpdateQuantityChecked(itemID string, expectedQty, newQty int64) (bool, error) {
	query := `
		UPDATE items SET quantity = $3, updated_at = now()
		WHERE id = $1 AND quantity = $2`
	cmd, err := r.q.Exec(context.Background(), query, itemID, expectedQty, newQty)
	if err != nil {
		return false, fmt.Errorf("update quantity: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// scanItem escanea una fila con itemColumns.
func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Category, &it.Attributes, &it.SupplierRefs, &it.Quantity,
		&it.MeasurementUnit, &it.Price, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
