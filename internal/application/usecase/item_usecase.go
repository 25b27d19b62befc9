package usecase

import (
	"github.com/jhoicas/stocktally-api/internal/application/dto"
	"github.com/jhoicas/stocktally-api/internal/domain"
	"github.com/jhoicas/stocktally-api/internal/domain/entity"
	"github.com/jhoicas/stocktally-api/internal/domain/repository"
)

// ItemUseCase lectura del catálogo de artículos. Para este servicio el
// catálogo es de solo lectura: la creación/edición la maneja el colaborador
// externo; aquí solo se alimenta la vista filtrada que nutre el export y el
// historial de ajustes que deja el commit.
type ItemUseCase struct {
	repo        repository.ItemRepository
	adjustments repository.AdjustmentRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, adjustments repository.AdjustmentRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, adjustments: adjustments}
}

// List devuelve los artículos que cumplen el filtro, paginados.
func (uc *ItemUseCase) List(filter repository.ItemFilter, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	if filter.Category != "" && !entity.ValidCategory(filter.Category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.ListByFilter(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, item := range items {
		out.Items = append(out.Items, toItemResponse(item))
	}
	return out, nil
}

// GetByID devuelve un artículo por su código.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// ListAdjustments devuelve el historial de ajustes del artículo (más reciente
// primero), paginado. Artículo inexistente -> ErrNotFound.
func (uc *ItemUseCase) ListAdjustments(itemID string, page dto.PageRequest) (*dto.AdjustmentListResponse, error) {
	page.DefaultPage()
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	adjs, err := uc.adjustments.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AdjustmentListResponse{
		Adjustments: make([]dto.AdjustmentResponse, 0, len(adjs)),
		Page:        dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, adj := range adjs {
		out.Adjustments = append(out.Adjustments, dto.AdjustmentResponse{
			ID:               adj.ID,
			ItemID:           adj.ItemID,
			PreviousQuantity: adj.PreviousQty,
			NewQuantity:      adj.NewQty,
			Difference:       adj.Difference,
			Direction:        adj.Direction,
			AppliedBy:        adj.AppliedBy,
			AppliedAt:        adj.AppliedAt,
		})
	}
	return out, nil
}

func toItemResponse(item *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:              item.ID,
		Category:        item.Category,
		Details:         item.FlattenDetails(),
		Dimensions:      item.FlattenDimensions(),
		Attributes:      item.Attributes,
		SupplierRefs:    item.SupplierRefs,
		Quantity:        item.Quantity,
		MeasurementUnit: item.MeasurementUnit,
		Price:           item.Price,
		UpdatedAt:       item.UpdatedAt,
	}
}
