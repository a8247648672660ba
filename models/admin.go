package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"admin_first_name" json:"admin_first_name"`
	LastName  string             `bson:"admin_last_name" json:"admin_last_name"`
	Username  string             `bson:"admin_username" json:"admin_username"`
	Password  string             `bson:"admin_password" json:"-"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
