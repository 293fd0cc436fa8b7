package services

import (
	"context"
	"errors"
	"testing"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	amount int64
	err    error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	g.amount = amountMinor
	if g.err != nil {
		return "", g.err
	}
	return "pi_secret_test", nil
}

func newPaymentService(stores *store.Stores, gw PaymentGateway) *PaymentService {
	return NewPaymentService(stores.Payments, stores.Carts, stores.Users, stores.Menu, gw, zerolog.Nop())
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	svc := newPaymentService(store.NewMemoryStores(), gw)

	secret, err := svc.CreateIntent(context.Background(), 12.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_test", secret)
	assert.EqualValues(t, 1299, gw.amount)

	_, err = svc.CreateIntent(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 500, gw.amount)
}

func TestCreateIntentPropagatesGatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("processor down")}
	svc := newPaymentService(store.NewMemoryStores(), gw)

	_, err := svc.CreateIntent(context.Background(), 10)
	require.ErrorContains(t, err, "processor down")
}

func TestRecordPaymentClearsOwnCart(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := newPaymentService(stores, &fakeGateway{})
	ctx := context.Background()

	c1, err := stores.Carts.Insert(ctx, models.CartItem{UserEmail: "a@x.com", Name: "Soup", Price: 5})
	require.NoError(t, err)
	c2, err := stores.Carts.Insert(ctx, models.CartItem{UserEmail: "a@x.com", Name: "Cake", Price: 7})
	require.NoError(t, err)
	_, err = stores.Carts.Insert(ctx, models.CartItem{UserEmail: "b@x.com", Name: "Pasta", Price: 12})
	require.NoError(t, err)

	receipt, err := svc.Record(ctx, models.Payment{
		Email:         "a@x.com",
		Price:         12,
		TransactionID: "tx_1",
		CartIDs:       []string{c1, c2},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.InsertedID)
	assert.EqualValues(t, 2, receipt.DeletedCount)

	remaining, err := stores.Carts.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	others, err := stores.Carts.ListByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, others, 1)

	history, err := svc.HistoryByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "tx_1", history[0].TransactionID)
}

func TestRecordPaymentSkipsForeignCartItems(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := newPaymentService(stores, &fakeGateway{})
	ctx := context.Background()

	own, err := stores.Carts.Insert(ctx, models.CartItem{UserEmail: "a@x.com", Price: 5})
	require.NoError(t, err)
	foreign, err := stores.Carts.Insert(ctx, models.CartItem{UserEmail: "b@x.com", Price: 9})
	require.NoError(t, err)

	receipt, err := svc.Record(ctx, models.Payment{
		Email:   "a@x.com",
		Price:   5,
		CartIDs: []string{own, foreign},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, receipt.DeletedCount)

	others, err := stores.Carts.ListByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestRecordPaymentRejectsMalformedCartID(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := newPaymentService(stores, &fakeGateway{})
	ctx := context.Background()

	_, err := svc.Record(ctx, models.Payment{
		Email:   "a@x.com",
		CartIDs: []string{"definitely-not-hex"},
	})
	require.ErrorIs(t, err, ErrInvalidID)

	count, err := stores.Payments.EstimatedCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStats(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := newPaymentService(stores, &fakeGateway{})
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.Orders)

	_, err = stores.Payments.Insert(ctx, models.Payment{Email: "a@x.com", Price: 10})
	require.NoError(t, err)
	_, err = stores.Payments.Insert(ctx, models.Payment{Email: "b@x.com", Price: 15})
	require.NoError(t, err)
	_, err = stores.Users.Insert(ctx, models.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = stores.Menu.Insert(ctx, models.MenuItem{Name: "Soup"})
	require.NoError(t, err)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 25, stats.Revenue)
	assert.EqualValues(t, 2, stats.Orders)
	assert.EqualValues(t, 1, stats.Users)
	assert.EqualValues(t, 1, stats.MenuItems)
}
