package product

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter, limit int64) ([]*Product, error)
	// GetByID returns (nil, nil) when no record matches.
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	// Replace overwrites the mutable fields; reports whether a record matched.
	Replace(ctx context.Context, id string, fields Fields) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("products")}
}

func (r *repository) List(ctx context.Context, filter ListFilter, limit int64) ([]*Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	if filter.RequiresPrescription != nil {
		query["requiresPrescription"] = *filter.RequiresPrescription
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := make([]*Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *repository) Replace(ctx context.Context, id string, fields Fields) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":                 fields.Name,
		"description":          fields.Description,
		"price":                fields.Price,
		"stock":                fields.Stock,
		"image":                fields.Image,
		"category":             fields.Category,
		"requiresPrescription": fields.RequiresPrescription,
		"strength":             fields.Strength,
		"manufacturer":         fields.Manufacturer,
		"sideEffects":          fields.SideEffects,
		"usage":                fields.Usage,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
