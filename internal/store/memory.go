package store

import (
	"context"
	"sync"

	"bistro-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStores returns map-backed stores with the same semantics as the
// Mongo ones. The test suite runs the full stack against them.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:    &memoryUsers{docs: map[primitive.ObjectID]models.User{}},
		Menu:     &memoryMenu{docs: map[primitive.ObjectID]models.MenuItem{}},
		Reviews:  &memoryReviews{},
		Carts:    &memoryCarts{docs: map[primitive.ObjectID]models.CartItem{}},
		Payments: &memoryPayments{docs: map[primitive.ObjectID]models.Payment{}},
	}
}

type memoryUsers struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]models.User
}

func (s *memoryUsers) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []models.User{}
	for _, u := range s.docs {
		users = append(users, u)
	}
	return users, nil
}

func (s *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.docs {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *memoryUsers) Insert(ctx context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.docs[user.ID] = user
	return user.ID.Hex(), nil
}

func (s *memoryUsers) SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.docs[id]
	if !ok {
		return 0, 0, nil
	}
	if user.Role == role {
		return 1, 0, nil
	}
	user.Role = role
	s.docs[id] = user
	return 1, 1, nil
}

func (s *memoryUsers) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryUsers) EstimatedCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

type memoryMenu struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]models.MenuItem
}

func (s *memoryMenu) List(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.MenuItem{}
	for _, it := range s.docs {
		items = append(items, it)
	}
	return items, nil
}

func (s *memoryMenu) Insert(ctx context.Context, item models.MenuItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.docs[item.ID] = item
	return item.ID.Hex(), nil
}

func (s *memoryMenu) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryMenu) EstimatedCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

type memoryReviews struct {
	mu   sync.RWMutex
	docs []models.Review
}

func (s *memoryReviews) List(ctx context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := []models.Review{}
	reviews = append(reviews, s.docs...)
	return reviews, nil
}

// Seed loads review documents, which have no write path through the API.
func (s *memoryReviews) Seed(reviews ...models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, reviews...)
}

type memoryCarts struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]models.CartItem
}

func (s *memoryCarts) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.CartItem{}
	for _, it := range s.docs {
		if it.UserEmail == email {
			items = append(items, it)
		}
	}
	return items, nil
}

func (s *memoryCarts) Insert(ctx context.Context, item models.CartItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.docs[item.ID] = item
	return item.ID.Hex(), nil
}

func (s *memoryCarts) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	return 1, nil
}

func (s *memoryCarts) DeleteOwned(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		item, ok := s.docs[id]
		if !ok || item.UserEmail != email {
			continue
		}
		delete(s.docs, id)
		deleted++
	}
	return deleted, nil
}

type memoryPayments struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]models.Payment
}

func (s *memoryPayments) Insert(ctx context.Context, payment models.Payment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.docs[payment.ID] = payment
	return payment.ID.Hex(), nil
}

func (s *memoryPayments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := []models.Payment{}
	for _, p := range s.docs {
		if p.Email == email {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (s *memoryPayments) TotalRevenue(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, p := range s.docs {
		total += p.Price
	}
	return total, nil
}

func (s *memoryPayments) EstimatedCount(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}
