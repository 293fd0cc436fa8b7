package services

import (
	"context"
	"fmt"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartService struct {
	carts  store.CartStore
	logger zerolog.Logger
}

func NewCartService(carts store.CartStore, logger zerolog.Logger) *CartService {
	return &CartService{
		carts:  carts,
		logger: logger,
	}
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.carts.ListByEmail(ctx, email)
}

// Add stores the cart item verbatim; the owning email is trusted as supplied.
func (s *CartService) Add(ctx context.Context, item models.CartItem) (string, error) {
	id, err := s.carts.Insert(ctx, item)
	if err != nil {
		return "", fmt.Errorf("add cart item: %w", err)
	}
	return id, nil
}

func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.carts.Delete(ctx, oid)
}
