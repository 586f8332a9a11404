package prescription

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, p *Prescription) error
	// GetByIDAndUser returns (nil, nil) when no prescription matches both the
	// id and the owner.
	GetByIDAndUser(ctx context.Context, id, userID string) (*Prescription, error)
	// ListByUser and ListAll project the file payload away.
	ListByUser(ctx context.Context, userID string, limit int64) ([]*Summary, error)
	ListAll(ctx context.Context, limit int64) ([]*Summary, error)
	// Update reports whether a prescription matched.
	Update(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (bool, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("prescriptions")}
}

func (r *repository) Insert(ctx context.Context, p *Prescription) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *repository) GetByIDAndUser(ctx context.Context, id, userID string) (*Prescription, error) {
	var p Prescription
	err := r.col.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, limit int64) ([]*Summary, error) {
	return r.list(ctx, bson.M{"userId": userID}, limit)
}

func (r *repository) ListAll(ctx context.Context, limit int64) ([]*Summary, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *repository) list(ctx context.Context, filter bson.M, limit int64) ([]*Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{"fileData": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	summaries := make([]*Summary, 0)
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) Update(ctx context.Context, id string, params ReviewParams, updatedAt time.Time) (bool, error) {
	update := bson.M{"$set": bson.M{
		"status":          params.Status,
		"pharmacistNotes": params.PharmacistNotes,
		"reviewedBy":      params.ReviewedBy,
		"updatedAt":       updatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
