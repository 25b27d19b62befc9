package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktally-api/internal/application/dto"
	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

// TallyHandler maneja el asistente de conteo físico (protegido):
// export → upload/preview → commit. El servidor es sin estado entre pasos;
// abandonar la sesión en upload o preview no deja efectos.
type TallyHandler struct {
	exportUC  *apptally.ExportUseCase
	previewUC *apptally.PreviewUseCase
	commitUC  *apptally.CommitUseCase
}

// NewTallyHandler construye el handler.
func NewTallyHandler(exportUC *apptally.ExportUseCase, previewUC *apptally.PreviewUseCase, commitUC *apptally.CommitUseCase) *TallyHandler {
	return &TallyHandler{exportUC: exportUC, previewUC: previewUC, commitUC: commitUC}
}

// Export godoc
// @Summary      Exportar snapshot del conteo físico
// @Description  Genera el .xlsx de seis columnas con los artículos filtrados
//
//	y la cantidad vigente; New Stock Quantity queda en blanco.
//
// @Tags         tally
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query  string  false  "Categoría (sheet|handle|hardware|accessory|tape)"
// @Param        search    query  string  false  "Texto de búsqueda"
// @Success      200  {file}    file
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/tally/export [get]
func (h *TallyHandler) Export(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	data, filename, err := h.exportUC.Export(c.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrNoItemsToExport) {
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "NO_ITEMS", Message: "el filtro no tiene artículos para exportar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Preview godoc
// @Summary      Previsualizar la reconciliación
// @Description  Parsea el archivo editado, rebasa contra cantidades vivas y
//
//	devuelve las entradas con sus errores por fila. El archivo
//	exportado tiene valor solo informativo: la cantidad "actual"
//	se lee del catálogo en este momento.
//
// @Tags         tally
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx editado"
// @Success      200   {object}  dto.TallyPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/tally/preview [post]
func (h *TallyHandler) Preview(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo file (multipart)"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo abrir el archivo subido"})
	}
	defer src.Close()

	resp, err := h.previewUC.Preview(c.Context(), src)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnreadableFile):
			// Falla estructural: el operador permanece en el paso de subida.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "el archivo no es una hoja de cálculo válida del snapshot"})
		case errors.Is(err, domain.ErrNoChanges):
			// Archivo válido pero sin cambios: condición bloqueante propia,
			// con los errores por fila para que el operador corrija.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "NO_CHANGES",
				Message: "no se encontraron cambios utilizables en el archivo",
				Details: resp.RowErrors,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PREVIEW_FAILED", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Commit godoc
// @Summary      Aplicar el lote de reconciliación
// @Description  Aplica cada entrada con verificación optimista. El éxito
//
//	parcial (algunas entradas en conflicto) es HTTP 200 con los
//	resultados por entrada; no hay rollback de lo aplicado.
//
// @Tags         tally
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TallyCommitRequest  true  "Entradas revisadas"
// @Success      200   {object}  dto.TallyCommitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tally/commit [post]
func (h *TallyHandler) Commit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TallyCommitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.commitUC.Commit(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote está vacío o tiene entradas inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "COMMIT_FAILED", Message: err.Error()})
	}
	return c.JSON(resp)
}
