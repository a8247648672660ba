package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
)

type OrderStore struct {
	coll *mongo.Collection
}

func (s *OrderStore) Insert(ctx context.Context, order models.Order) (string, error) {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, errs.NotFound("Order not found.")
	}
	var order models.Order
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("Order not found.")
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) SetApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, errs.NotFound("Order not found.")
	}
	var order models.Order
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"order_approval_status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("Order not found.")
		}
		return nil, err
	}
	return &order, nil
}
