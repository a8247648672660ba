// Package mongodb implements the store facades on top of the MongoDB Go
// driver. Single-document writes are atomic at the document level; anything
// wider is coordinated by the callers.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// Connect dials the database and returns the wired store set.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, store.Stores, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, store.Stores{}, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, store.Stores{}, err
	}

	db := client.Database(database)
	stores := store.Stores{
		Users:    &UserStore{coll: db.Collection("users")},
		Products: &ProductStore{coll: db.Collection("products")},
		Admins:   &AdminStore{coll: db.Collection("admins")},
		Orders:   &OrderStore{coll: db.Collection("orders")},
	}
	return client, stores, nil
}

// objectID parses a 24-hex id. An unparseable id can reference nothing, so
// callers treat the false case as not-found.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}
