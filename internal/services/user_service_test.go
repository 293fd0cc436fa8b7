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

func TestCreateIfAbsentIsIdempotent(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewUserService(stores.Users, zerolog.Nop())
	ctx := context.Background()

	id, exists, err := svc.CreateIfAbsent(ctx, models.User{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NotEmpty(t, id)

	id2, exists, err := svc.CreateIfAbsent(ctx, models.User{Name: "A again", Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Empty(t, id2)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIsAdmin(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewUserService(stores.Users, zerolog.Nop())
	ctx := context.Background()

	_, err := stores.Users.Insert(ctx, models.User{Email: "admin@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = stores.Users.Insert(ctx, models.User{Email: "user@x.com"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, "user@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestPromoteToAdmin(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewUserService(stores.Users, zerolog.Nop())
	ctx := context.Background()

	_, _, err := svc.PromoteToAdmin(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, ErrInvalidID)

	matched, modified, err := svc.PromoteToAdmin(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Zero(t, matched)
	assert.Zero(t, modified)

	id, _, err := svc.CreateIfAbsent(ctx, models.User{Name: "B", Email: "b@x.com"})
	require.NoError(t, err)

	matched, modified, err = svc.PromoteToAdmin(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, matched)
	assert.EqualValues(t, 1, modified)

	isAdmin, err := svc.IsAdmin(ctx, "b@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestDeleteUser(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewUserService(stores.Users, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Delete(ctx, "bogus")
	require.ErrorIs(t, err, ErrInvalidID)

	id, _, err := svc.CreateIfAbsent(ctx, models.User{Email: "c@x.com"})
	require.NoError(t, err)

	count, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, count)
}
