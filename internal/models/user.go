package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// RoleAdmin is the only role value that grants elevated access. Any other
// value, or an unset role, means a standard user.
const RoleAdmin = "admin"

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
