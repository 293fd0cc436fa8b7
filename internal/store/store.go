// Package store holds thin per-collection repositories. Each interface maps
// one collection's operations; handlers never touch the database directly.
package store

import (
	"context"

	"bistro-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (string, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (string, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (string, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// DeleteOwned removes the given cart items, restricted to the owner's
	// email. Ids that no longer exist are skipped, so the call is idempotent.
	DeleteOwned(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type Stores struct {
	Users    UserStore
	Menu     MenuStore
	Reviews  ReviewStore
	Carts    CartStore
	Payments PaymentStore
}
