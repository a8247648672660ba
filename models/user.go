package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultProfileURL = "https://rb.gy/w1bm3w"

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName  string             `bson:"first_name" json:"first_name"`
	LastName   string             `bson:"last_name" json:"last_name"`
	Username   string             `bson:"username" json:"username"`
	Phone      string             `bson:"phone" json:"phone"`
	Password   string             `bson:"password" json:"-"`
	Email      string             `bson:"email" json:"email"`
	ProfileURL string             `bson:"profile_url" json:"profile_url"`
	Cart       []CartItem         `bson:"shopping_cart" json:"shopping_cart"`
}

// UserPatch carries the optional fields of a partial user update. Only
// non-nil fields end up in the stored document.
type UserPatch struct {
	FirstName  *string
	LastName   *string
	Username   *string
	Phone      *string
	Password   *string
	Email      *string
	ProfileURL *string
}

// Fields flattens the patch into field-name/value pairs for the store.
func (p UserPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	if p.Username != nil {
		fields["username"] = *p.Username
	}
	if p.Phone != nil {
		fields["phone"] = *p.Phone
	}
	if p.Password != nil {
		fields["password"] = *p.Password
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.ProfileURL != nil {
		fields["profile_url"] = *p.ProfileURL
	}
	return fields
}
