package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	// GetByUser returns (nil, nil) when the user has no cart document.
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	// Upsert replaces the user's cart document, creating it if absent.
	Upsert(ctx context.Context, c *Cart) error
	// DeleteByUser removes the cart document; a no-op when absent.
	DeleteByUser(ctx context.Context, userID string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("carts")}
}

func (r *repository) GetByUser(ctx context.Context, userID string) (*Cart, error) {
	var c Cart
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Upsert(ctx context.Context, c *Cart) error {
	_, err := r.col.UpdateOne(
		ctx,
		bson.M{"userId": c.UserID},
		bson.M{"$set": c},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
