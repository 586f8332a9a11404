package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	// GetByIDAndUser returns (nil, nil) when no order matches both the id and
	// the owner.
	GetByIDAndUser(ctx context.Context, id, userID string) (*Order, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]*Order, error)
	ListAll(ctx context.Context, limit int64) ([]*Order, error)
	// UpdateStatus reports whether an order matched.
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("orders")}
}

func (r *repository) Insert(ctx context.Context, o *Order) error {
	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *repository) GetByIDAndUser(ctx context.Context, id, userID string) (*Order, error) {
	var o Order
	err := r.col.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int64) ([]*Order, error) {
	return r.list(ctx, bson.M{"userId": userID}, limit)
}

func (r *repository) ListAll(ctx context.Context, limit int64) ([]*Order, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *repository) list(ctx context.Context, filter bson.M, limit int64) ([]*Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := make([]*Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
