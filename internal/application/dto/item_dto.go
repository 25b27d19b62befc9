package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ItemResponse proyección de un artículo del catálogo para el listado que
// alimenta el export (vista de solo lectura para este subsistema).
type ItemResponse struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Details         string          `json:"details"`
	Dimensions      string          `json:"dimensions,omitempty"`
	Attributes      json.RawMessage `json:"attributes,omitempty"`
	SupplierRefs    []string        `json:"supplier_refs,omitempty"`
	Quantity        int64           `json:"quantity"`
	MeasurementUnit string          `json:"measurement_unit"`
	Price           decimal.Decimal `json:"price"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
