package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículo. El catálogo es un conjunto fijo y pequeño;
// Attributes se interpreta según la categoría (unión etiquetada).
const (
	CategorySheet     = "sheet"     // tableros / láminas
	CategoryHandle    = "handle"    // manijas
	CategoryHardware  = "hardware"  // herrajes
	CategoryAccessory = "accessory" // accesorios
	CategoryTape      = "tape"      // cantos / cintas
)

// Item representa un artículo del catálogo autoritativo. Para el motor de
// conteo es de solo lectura salvo Quantity, que únicamente muta el commit del
// tally con verificación optimista.
// Invariante: ItemID es único globalmente y nunca se reutiliza.
type Item struct {
	ID              string // ItemID, código visible (ej. "SH-0042")
	Category        string
	Attributes      json.RawMessage // campos descriptivos según Category
	SupplierRefs    []string
	Quantity        int64 // entero no negativo
	MeasurementUnit string
	Price           decimal.Decimal // precio de lista, solo catálogo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Atributos por categoría. Solo presentación: se aplanan a un string legible
// para la columna Details del snapshot y nunca se re-parsean al importar.

// SheetAttributes atributos de tableros/láminas.
type SheetAttributes struct {
	Brand     string `json:"brand"`
	Color     string `json:"color"`
	Finish    string `json:"finish"`
	Thickness string `json:"thickness"`
	Length    string `json:"length"`
	Width     string `json:"width"`
}

// HandleAttributes atributos de manijas.
type HandleAttributes struct {
	Brand    string `json:"brand"`
	Material string `json:"material"`
	Finish   string `json:"finish"`
	Size     string `json:"size"`
}

// HardwareAttributes atributos de herrajes.
type HardwareAttributes struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Spec  string `json:"spec"`
}

// AccessoryAttributes atributos de accesorios.
type AccessoryAttributes struct {
	Brand       string `json:"brand"`
	Description string `json:"description"`
}

// TapeAttributes atributos de cantos/cintas.
type TapeAttributes struct {
	Brand     string `json:"brand"`
	Color     string `json:"color"`
	Thickness string `json:"thickness"`
	Width     string `json:"width"`
}

// FlattenDetails aplana los atributos del artículo a un string legible según
// su categoría. Es un switch sobre la etiqueta, no una jerarquía de tipos: la
// lógica es puramente de presentación.
func (i *Item) FlattenDetails() string {
	switch i.Category {
	case CategorySheet:
		var a SheetAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinNonEmpty(a.Brand, a.Color, a.Finish)
	case CategoryHandle:
		var a HandleAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinNonEmpty(a.Brand, a.Material, a.Finish)
	case CategoryHardware:
		var a HardwareAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinNonEmpty(a.Brand, a.Model, a.Spec)
	case CategoryAccessory:
		var a AccessoryAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinNonEmpty(a.Brand, a.Description)
	case CategoryTape:
		var a TapeAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinNonEmpty(a.Brand, a.Color)
	}
	return ""
}

// FlattenDimensions aplana las medidas del artículo (si la categoría las
// tiene) a un string tipo "2440 x 1220 x 18mm".
func (i *Item) FlattenDimensions() string {
	switch i.Category {
	case CategorySheet:
		var a SheetAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinDimensions(a.Length, a.Width, a.Thickness)
	case CategoryHandle:
		var a HandleAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return a.Size
	case CategoryTape:
		var a TapeAttributes
		if err := json.Unmarshal(i.Attributes, &a); err != nil {
			return ""
		}
		return joinDimensions(a.Width, a.Thickness)
	}
	return ""
}

// FlattenSupplierRefs une las referencias de proveedor para la columna
// Supplier Reference del snapshot.
func (i *Item) FlattenSupplierRefs() string {
	return strings.Join(i.SupplierRefs, ", ")
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " - ")
}

func joinDimensions(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " x ")
}

// ValidCategory indica si la categoría pertenece al conjunto fijo.
func ValidCategory(c string) bool {
	switch c {
	case CategorySheet, CategoryHandle, CategoryHardware, CategoryAccessory, CategoryTape:
		return true
	}
	return false
}

// String implementa fmt.Stringer para logging.
func (i *Item) String() string {
	return fmt.Sprintf("%s (%s, qty=%d %s)", i.ID, i.Category, i.Quantity, i.MeasurementUnit)
}
