package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultProductURL is used when a product is created without an image.
const DefaultProductURL = "https://res.cloudinary.com/db0nvjc2z/image/upload/v1714307476/Ecommerce-Shopping/Products/shopping-cart_tlud4v.png"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
}

// ProductPatch carries the optional fields of a partial product update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

func (p ProductPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	return fields
}
