package services

import (
	"context"
	"fmt"
	"time"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users  store.UserStore
	logger zerolog.Logger
}

func NewUserService(users store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// IsAdmin reports whether a user with this email exists and carries the admin
// role. The lookup hits the store every time so role changes take effect on
// the next request.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == models.RoleAdmin, nil
}

// CreateIfAbsent registers the user unless one with the same email already
// exists. The second return value is true when the email was already taken
// and nothing was written.
func (s *UserService) CreateIfAbsent(ctx context.Context, user models.User) (string, bool, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		return "", true, nil
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", false, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("User registered")
	return id, false, nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (int64, int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, ErrInvalidID
	}

	matched, modified, err := s.users.SetRole(ctx, oid, models.RoleAdmin)
	if err != nil {
		return 0, 0, err
	}

	s.logger.Info().Str("user_id", id).Int64("matched", matched).Msg("User promoted to admin")
	return matched, modified, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.users.Delete(ctx, oid)
}
