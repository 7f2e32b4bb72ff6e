package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakoelda-code/wom-partes/internal/application/inventory"
	"github.com/pakoelda-code/wom-partes/internal/domain"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

func newQuery(store *memStore) *inventory.MovementQuery {
	tx := &memTx{store: store, stocks: make(map[string]int64)}
	return inventory.NewMovementQuery(&memItems{tx: tx}, &memMovements{tx: tx}, 0)
}

func TestMovementHistory(t *testing.T) {
	store := newMemStore()
	id := store.addItem(10, true)
	engine := newEngine(store)
	ctx := context.Background()

	_, err := engine.RecordMovement(ctx, inventory.MovementInput{
		ItemID: id, Type: entity.MovementTypeSalida, Quantity: 3, Actor: actor,
	})
	require.NoError(t, err)
	_, err = engine.RecordMovement(ctx, inventory.MovementInput{
		ItemID: id, Type: entity.MovementTypeEntrada, Quantity: 1, Actor: actor,
	})
	require.NoError(t, err)

	out, err := newQuery(store).History(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, out.ItemID)
	assert.Equal(t, "F-0001", out.ItemCode)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, entity.MovementTypeEntrada, out.Entries[0].Type, "más reciente primero")
	assert.Equal(t, "P000A", out.Entries[0].ActorCode)
}

func TestMovementHistory_LaBajaConservaElHistorial(t *testing.T) {
	store := newMemStore()
	id := store.addItem(5, true)
	engine := newEngine(store)
	ctx := context.Background()

	_, err := engine.RecordMovement(ctx, inventory.MovementInput{
		ItemID: id, Type: entity.MovementTypeSalida, Quantity: 5, Actor: actor,
	})
	require.NoError(t, err)
	store.items[id].Active = false

	out, err := newQuery(store).History(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total, "el libro sigue consultable tras la baja")
}

func TestMovementHistory_NoExiste(t *testing.T) {
	store := newMemStore()
	q := newQuery(store)
	ctx := context.Background()

	_, err := q.History(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = q.History(ctx, "no-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
