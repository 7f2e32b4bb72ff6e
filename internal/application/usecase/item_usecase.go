package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/catalog"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de artículos: alta con código
// generado, edición de ubicación, baja lógica y búsqueda por descripción.
type ItemUseCase struct {
	items       repository.ItemRepository
	locations   repository.LocationRepository
	searchLimit int
}

// NewItemUseCase construye el caso de uso. searchLimit acota los resultados
// de búsqueda para evitar escaneos sin límite.
func NewItemUseCase(items repository.ItemRepository, locations repository.LocationRepository, searchLimit int) *ItemUseCase {
	if searchLimit <= 0 {
		searchLimit = 100
	}
	return &ItemUseCase{items: items, locations: locations, searchLimit: searchLimit}
}

// Create da de alta un artículo: valida categoría, stock inicial y ubicación,
// genera el código {prefijo}-{secuencia:04d} y persiste. El stock inicial no
// genera apunte en el libro: solo se registran los cambios posteriores al alta.
// Ante una colisión de código (carrera entre dos altas que calcularon la misma
// secuencia) reintenta una vez con la secuencia recalculada antes de fallar
// con domain.ErrCodeConflict.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	prefix, err := catalog.Prefix(in.Category)
	if err != nil {
		return nil, err
	}
	if uuid.Validate(in.LocationID) != nil {
		return nil, domain.ErrNotFound
	}

	loc, err := uc.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || !loc.Active {
		return nil, domain.ErrNotFound
	}

	// Dos intentos: el segundo recalcula la secuencia tras una colisión 23505.
	var item *entity.Item
	for attempt := 0; attempt < 2; attempt++ {
		seq, err := uc.items.MaxSequence(ctx, prefix)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		item = &entity.Item{
			ID:          uuid.New().String(),
			Code:        catalog.FormatCode(prefix, seq+1),
			Category:    in.Category,
			Description: description,
			LocationID:  in.LocationID,
			Stock:       in.InitialStock,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err = uc.items.Create(ctx, item)
		if err == nil {
			return toItemResponse(item), nil
		}
		if !errors.Is(err, domain.ErrCodeConflict) {
			return nil, err
		}
	}
	return nil, domain.ErrCodeConflict
}

// ChangeLocation reasigna la ubicación de un artículo activo. No afecta al stock.
func (uc *ItemUseCase) ChangeLocation(ctx context.Context, itemID string, in dto.ChangeItemLocationRequest) (*dto.ItemResponse, error) {
	if uuid.Validate(itemID) != nil || uuid.Validate(in.LocationID) != nil {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || !loc.Active {
		return nil, domain.ErrNotFound
	}
	if err := uc.items.UpdateLocation(ctx, itemID, in.LocationID); err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Deactivate da de baja lógica un artículo. Se permite con cualquier stock:
// el libro histórico debe seguir siendo válido contra el artículo.
func (uc *ItemUseCase) Deactivate(ctx context.Context, itemID string) error {
	if uuid.Validate(itemID) != nil {
		return domain.ErrNotFound
	}
	return uc.items.Deactivate(ctx, itemID)
}

// GetByID devuelve un artículo por su identificador.
func (uc *ItemUseCase) GetByID(ctx context.Context, itemID string) (*dto.ItemResponse, error) {
	if uuid.Validate(itemID) != nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// SearchByDescription busca artículos por subcadena de descripción, sin
// distinguir mayúsculas, ordenado por descripción y acotado al límite.
func (uc *ItemUseCase) SearchByDescription(ctx context.Context, substring string, includeInactive bool) (*dto.ItemListResponse, error) {
	list, err := uc.items.SearchByDescription(ctx, substring, includeInactive, uc.searchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Code:        item.Code,
		Category:    item.Category,
		Description: item.Description,
		LocationID:  item.LocationID,
		Stock:       item.Stock,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
