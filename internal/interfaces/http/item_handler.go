package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktally-api/internal/application/dto"
	"github.com/jhoicas/stocktally-api/internal/application/usecase"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

// ItemHandler listado/consulta del catálogo (protegido, solo lectura).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos del catálogo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Categoría (sheet|handle|hardware|accessory|tape)"
// @Param        search    query  string  false  "Texto de búsqueda"
// @Param        limit     query  int     false  "Tamaño de página (def. 20)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	filter := repository.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Adjustments godoc
// @Summary      Historial de ajustes de un artículo
// @Description  Ajustes de cantidad aplicados por el commit del conteo
//
//	físico, más reciente primero.
//
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Código del artículo"
// @Param        limit   query  int     false  "Tamaño de página (def. 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjustments [get]
func (h *ItemHandler) Adjustments(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.ListAdjustments(id, page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por código
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Código del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
