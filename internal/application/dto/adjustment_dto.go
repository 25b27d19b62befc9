package dto

import "time"

// AdjustmentResponse un ajuste de cantidad aplicado por el commit del conteo.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"item_id"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Difference       int64     `json:"difference"`
	Direction        string    `json:"direction"`
	AppliedBy        string    `json:"applied_by"`
	AppliedAt        time.Time `json:"applied_at"`
}

// AdjustmentListResponse historial de ajustes de un artículo, más reciente
// primero.
type AdjustmentListResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
	Page        PageResponse         `json:"page"`
}
