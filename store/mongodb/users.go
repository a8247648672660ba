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

type UserStore struct {
	coll *mongo.Collection
}

func (s *UserStore) Insert(ctx context.Context, user models.User) (string, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, errs.NotFound("User not found")
	}
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) PhoneInUseByOther(ctx context.Context, phone, excludeID string) (bool, error) {
	oid, ok := objectID(excludeID)
	if !ok {
		return false, errs.NotFound("User not found")
	}
	err := s.coll.FindOne(ctx, bson.M{"phone": phone, "_id": bson.M{"$ne": oid}}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserStore) Update(ctx context.Context, id string, patch models.UserPatch) error {
	oid, ok := objectID(id)
	if !ok {
		return errs.NotFound("User not found")
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		// An empty patch still has to confirm the user exists.
		err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.NotFound("User not found")
		}
		return err
	}
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NotFound("User not found")
	}
	return err
}

func (s *UserStore) ReplaceCart(ctx context.Context, id string, items []models.CartItem) error {
	oid, ok := objectID(id)
	if !ok {
		return errs.NotFound("User not found")
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"shopping_cart": items}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("User not found")
	}
	return nil
}

func (s *UserStore) PushCartItem(ctx context.Context, id string, item models.CartItem) error {
	oid, ok := objectID(id)
	if !ok {
		return errs.NotFound("User not found")
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"shopping_cart": item}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.NotFound("User not found")
	}
	return nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
