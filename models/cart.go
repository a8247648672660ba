package models

// CartItem is one line of a user's shopping cart. The product reference is a
// weak one: the product may be deleted from the catalog after the item was
// added, and each pricing policy decides what to do about that.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}
