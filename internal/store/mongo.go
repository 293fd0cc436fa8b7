package store

import (
	"context"
	"errors"
	"fmt"

	"bistro-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewMongoStores(database *mongo.Database) *Stores {
	return &Stores{
		Users:    &mongoUsers{c: database.Collection("users")},
		Menu:     &mongoMenu{c: database.Collection("menu")},
		Reviews:  &mongoReviews{c: database.Collection("reviews")},
		Carts:    &mongoCarts{c: database.Collection("carts")},
		Payments: &mongoPayments{c: database.Collection("payments")},
	}
}

func insertedHex(res *mongo.InsertOneResult) string {
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}

type mongoUsers struct {
	c *mongo.Collection
}

func (s *mongoUsers) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *mongoUsers) Insert(ctx context.Context, user models.User) (string, error) {
	res, err := s.c.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return insertedHex(res), nil
}

func (s *mongoUsers) SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, 0, fmt.Errorf("update user role: %w", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *mongoUsers) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *mongoUsers) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}

type mongoMenu struct {
	c *mongo.Collection
}

func (s *mongoMenu) List(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

func (s *mongoMenu) Insert(ctx context.Context, item models.MenuItem) (string, error) {
	res, err := s.c.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return insertedHex(res), nil
}

func (s *mongoMenu) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *mongoMenu) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}

type mongoReviews struct {
	c *mongo.Collection
}

func (s *mongoReviews) List(ctx context.Context) ([]models.Review, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

type mongoCarts struct {
	c *mongo.Collection
}

func (s *mongoCarts) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.c.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

func (s *mongoCarts) Insert(ctx context.Context, item models.CartItem) (string, error) {
	res, err := s.c.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	return insertedHex(res), nil
}

func (s *mongoCarts) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *mongoCarts) DeleteOwned(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{
		"_id":       bson.M{"$in": ids},
		"userEmail": email,
	})
	if err != nil {
		return 0, fmt.Errorf("delete owned cart items: %w", err)
	}
	return res.DeletedCount, nil
}

type mongoPayments struct {
	c *mongo.Collection
}

func (s *mongoPayments) Insert(ctx context.Context, payment models.Payment) (string, error) {
	res, err := s.c.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedHex(res), nil
}

func (s *mongoPayments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (s *mongoPayments) TotalRevenue(ctx context.Context) (float64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	})
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

func (s *mongoPayments) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
