package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail and GetByID return (nil, nil) when no record matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, limit int64) ([]*User, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("users")}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *repository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var u User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context, limit int64) ([]*User, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]*User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
