package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a pending line item owned by one user email. The menu item
// fields are denormalized at add time, so a later menu change does not touch
// carts.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID    string             `bson:"menuId" json:"menuId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64            `bson:"price" json:"price"`
}
