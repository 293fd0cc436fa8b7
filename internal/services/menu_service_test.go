package services

import (
	"context"
	"testing"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuDeleteOutcomes(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewMenuService(stores.Menu, stores.Reviews, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Delete(ctx, "not-an-object-id")
	require.ErrorIs(t, err, ErrInvalidID)

	count, err := svc.Delete(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Zero(t, count)

	id, err := svc.Create(ctx, models.MenuItem{Name: "Pasta", Category: "mains", Price: 12.5})
	require.NoError(t, err)

	count, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuCreateAndList(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewMenuService(stores.Menu, stores.Reviews, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.MenuItem{Name: "Soup", Category: "starters", Price: 4.5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.MenuItem{Name: "Cake", Category: "desserts", Price: 6})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
