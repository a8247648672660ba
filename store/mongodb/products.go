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

type ProductStore struct {
	coll *mongo.Collection
}

func (s *ProductStore) Insert(ctx context.Context, product models.Product) (string, error) {
	res, err := s.coll.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, errs.NotFound("Product not found")
	}
	var product models.Product
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("Product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch models.ProductPatch) error {
	oid, ok := objectID(id)
	if !ok {
		return errs.NotFound("Product not found")
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("Product not found")
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return errs.NotFound("Product not found")
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("Product not found")
	}
	return nil
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
