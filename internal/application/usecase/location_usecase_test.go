package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/application/usecase"
	"github.com/pakoelda-code/wom-partes/internal/domain"
)

func TestLocationCreate_AltaYDuplicado(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "  Almacén Central  "})
	require.NoError(t, err)
	assert.Equal(t, "Almacén Central", created.Name, "el nombre se guarda sin espacios de sobra")
	assert.True(t, created.Active)
	assert.NotEmpty(t, created.ID)

	// El duplicado no distingue mayúsculas.
	_, err = uc.Create(ctx, dto.CreateLocationRequest{Name: "almacén central"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = uc.Create(ctx, dto.CreateLocationRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocationCreate_ReactivaLaInactiva(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Estantería B"})
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(ctx, created.ID))

	// Recrear con el mismo nombre reactiva la fila existente, mismo ID.
	again, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Estantería B"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.True(t, again.Active)
}

func TestLocationDeactivate_GuardaDeArticulosActivos(t *testing.T) {
	repo := newFakeLocationRepo()
	activeItems := 2
	repo.itemsIn = func(string) int { return activeItems }
	uc := usecase.NewLocationUseCase(repo)
	ctx := context.Background()

	loc, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Vitrina"})
	require.NoError(t, err)

	err = uc.Deactivate(ctx, loc.ID)
	assert.ErrorIs(t, err, domain.ErrLocationInUse)

	list, err := uc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total, "la ubicación sigue activa tras el rechazo")

	// Sin artículos activos la baja procede.
	activeItems = 0
	require.NoError(t, uc.Deactivate(ctx, loc.ID))
	list, err = uc.ListActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestLocationDeactivate_NoExisteOYaInactiva(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Deactivate(ctx, uuid.New().String()), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Deactivate(ctx, "basura"), domain.ErrNotFound)

	loc, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Pasillo 3"})
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(ctx, loc.ID))
	assert.ErrorIs(t, uc.Deactivate(ctx, loc.ID), domain.ErrNotFound)
}

func TestLocationListActive_OrdenadoPorNombre(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := usecase.NewLocationUseCase(repo)
	ctx := context.Background()

	for _, name := range []string{"Zona carga", "Almacén", "Mostrador"} {
		_, err := uc.Create(ctx, dto.CreateLocationRequest{Name: name})
		require.NoError(t, err)
	}
	mostrador, err := uc.Create(ctx, dto.CreateLocationRequest{Name: "Trastero"})
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(ctx, mostrador.ID))

	list, err := uc.ListActive(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "Almacén", list.Items[0].Name)
	assert.Equal(t, "Mostrador", list.Items[1].Name)
	assert.Equal(t, "Zona carga", list.Items[2].Name)
}
