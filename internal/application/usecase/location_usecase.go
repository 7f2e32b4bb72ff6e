package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
	"github.com/pakoelda-code/wom-partes/internal/domain/repository"
)

// LocationUseCase casos de uso del registro de ubicaciones: alta,
// desactivación con guarda de artículos activos y listado.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación nueva. Si existe una inactiva con el mismo nombre
// la reactiva (decisión explícita: recrear con el mismo nombre = reactivar).
// Devuelve domain.ErrDuplicateName si hay una activa con ese nombre.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	reactivated, err := uc.repo.Reactivate(ctx, name)
	if err != nil {
		return nil, err
	}
	if reactivated != nil {
		return toLocationResponse(reactivated), nil
	}

	loc := &entity.Location{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Deactivate desactiva una ubicación sin artículos activos. El repositorio
// aplica la guarda de forma atómica (domain.ErrLocationInUse si falla).
func (uc *LocationUseCase) Deactivate(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(ctx, id)
}

// ListActive lista las ubicaciones activas ordenadas por nombre.
func (uc *LocationUseCase) ListActive(ctx context.Context) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, loc := range list {
		items = append(items, *toLocationResponse(loc))
	}
	return &dto.LocationListResponse{Items: items, Total: len(items)}, nil
}

func toLocationResponse(loc *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		Active:    loc.Active,
		CreatedAt: loc.CreatedAt,
	}
}
