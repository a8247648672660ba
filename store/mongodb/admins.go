package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
)

type AdminStore struct {
	coll *mongo.Collection
}

func (s *AdminStore) Insert(ctx context.Context, admin models.Admin) (string, error) {
	res, err := s.coll.InsertOne(ctx, admin)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *AdminStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, errs.NotFound("Admin not registered.")
	}
	var admin models.Admin
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("Admin not registered.")
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.coll.FindOne(ctx, bson.M{"admin_username": username}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("Admin not registered.")
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) List(ctx context.Context) ([]models.Admin, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var admins []models.Admin
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}
