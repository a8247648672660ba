package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Order is an immutable snapshot of a user's cart taken at purchase time.
// Only ApprovalStatus is ever mutated afterwards.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderRef       string             `bson:"order_ref" json:"order_ref"`
	UserID         string             `bson:"user_id" json:"user_id"`
	UserAddress    string             `bson:"user_address" json:"user_address"`
	UserPhone      string             `bson:"user_phone" json:"user_phone"`
	Items          []CartItem         `bson:"shopping_cart" json:"shopping_cart"`
	TotalPrice     float64            `bson:"total_price" json:"total_price"`
	PurchaseTime   time.Time          `bson:"purchase_time" json:"purchase_time"`
	ApprovalStatus ApprovalStatus     `bson:"order_approval_status" json:"order_approval_status"`
}
