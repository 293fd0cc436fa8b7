package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written exactly once per successful checkout and never mutated
// through this API. CartIDs lists the cart items consumed by the purchase.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds,omitempty" json:"menuItemIds,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// PaymentReceipt carries both halves of the checkout outcome: the recorded
// payment id and how many cart items the follow-up clear removed.
type PaymentReceipt struct {
	InsertedID   string `json:"insertedId"`
	DeletedCount int64  `json:"deletedCount"`
}

type IntentRequest struct {
	Price float64 `json:"price"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
