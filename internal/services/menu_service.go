package services

import (
	"context"
	"fmt"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuService struct {
	menu    store.MenuStore
	reviews store.ReviewStore
	logger  zerolog.Logger
}

func NewMenuService(menu store.MenuStore, reviews store.ReviewStore, logger zerolog.Logger) *MenuService {
	return &MenuService{
		menu:    menu,
		reviews: reviews,
		logger:  logger,
	}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.List(ctx)
}

func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (string, error) {
	id, err := s.menu.Insert(ctx, item)
	if err != nil {
		return "", fmt.Errorf("create menu item: %w", err)
	}
	s.logger.Info().Str("menu_id", id).Str("name", item.Name).Msg("Menu item created")
	return id, nil
}

// Delete returns how many items were removed: 0 means the id was well-formed
// but matched nothing, which is not an error.
func (s *MenuService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	count, err := s.menu.Delete(ctx, oid)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		s.logger.Info().Str("menu_id", id).Msg("Menu item not found for deletion")
	}
	return count, nil
}

func (s *MenuService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.List(ctx)
}
