package dto

import "github.com/jhoicas/stocktally-api/internal/domain/tally"

// TallyPreviewResponse resultado de POST /api/tally/preview: las entradas de
// reconciliación validadas más los errores por fila acumulados.
type TallyPreviewResponse struct {
	Entries    []tally.Entry    `json:"entries"`
	RowErrors  []tally.RowError `json:"row_errors"`
	EntryCount int              `json:"entry_count"`
	ErrorCount int              `json:"error_count"`
}

// TallyCommitEntry una entrada del lote de commit. current_quantity es el
// valor que el cliente cree vigente; se usa para la verificación optimista.
type TallyCommitEntry struct {
	ItemID          string `json:"item_id"`
	CurrentQuantity int64  `json:"current_quantity"`
	NewQuantity     int64  `json:"new_quantity"`
}

// TallyCommitRequest body para POST /api/tally/commit.
type TallyCommitRequest struct {
	Entries []TallyCommitEntry `json:"entries"`
}

// Estados por entrada en el resultado del commit.
const (
	CommitOutcomeApplied  = "applied"
	CommitOutcomeConflict = "conflict" // la cantidad viva ya no coincide
	CommitOutcomeFailed   = "failed"   // error de transporte/BD para esa entrada
)

// TallyCommitOutcome resultado individual de una entrada del lote.
type TallyCommitOutcome struct {
	ItemID  string `json:"item_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// TallyCommitResponse resultado agregado del lote. El éxito parcial (Applied
// menor que el total enviado) es un resultado válido, no un error.
type TallyCommitResponse struct {
	Applied   int                  `json:"applied"`
	Conflicts int                  `json:"conflicts"`
	Failed    int                  `json:"failed"`
	Outcomes  []TallyCommitOutcome `json:"outcomes"`
}
