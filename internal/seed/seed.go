package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/logger"
	"wellnest-be/internal/product"
	"wellnest-be/internal/user"
)

const (
	adminEmail    = "admin@wellnest.com"
	adminPassword = "admin123"
)

// Run populates an empty catalog with sample products and makes sure the
// admin account exists. Safe to call on every startup.
func Run(ctx context.Context, db *mongo.Database) error {
	if err := seedProducts(ctx, db); err != nil {
		return err
	}
	return seedAdmin(ctx, db)
}

func seedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("products")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := sampleProducts()
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return err
	}

	logger.L().Info("seeded catalog", zap.Int("products", len(products)))
	return nil
}

func seedAdmin(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("users")

	err := col.FindOne(ctx, bson.M{"email": adminEmail}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &user.User{
		ID:        uuid.NewString(),
		Email:     adminEmail,
		Password:  hash,
		Name:      "Admin User",
		Role:      auth.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := col.InsertOne(ctx, admin); err != nil {
		return err
	}

	logger.L().Info("created admin user", zap.String("email", adminEmail))
	return nil
}

func strPtr(s string) *string { return &s }

func sampleProducts() []*product.Product {
	return []*product.Product{
		{
			ID:                   uuid.NewString(),
			Name:                 "Amoxicillin 500mg",
			Description:          "Antibiotic for bacterial infections",
			Price:                12.99,
			Stock:                100,
			Image:                "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400",
			Category:             "rx-medicines",
			RequiresPrescription: true,
			Strength:             strPtr("500mg"),
			Manufacturer:         strPtr("Generic Pharma"),
			Usage:                strPtr("Take one capsule every 8 hours"),
			SideEffects:          strPtr("Nausea, diarrhea, allergic reactions"),
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Vitamin D3 1000 IU",
			Description:          "Daily vitamin supplement for bone health",
			Price:                8.99,
			Stock:                200,
			Image:                "https://images.unsplash.com/photo-1550572017-4fa3e06eb24f?w=400",
			Category:             "wellness",
			RequiresPrescription: false,
			Strength:             strPtr("1000 IU"),
			Manufacturer:         strPtr("Health Plus"),
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Digital Thermometer",
			Description:          "Fast and accurate temperature readings",
			Price:                15.99,
			Stock:                50,
			Image:                "https://images.unsplash.com/photo-1584515933487-779824d29309?w=400",
			Category:             "devices",
			RequiresPrescription: false,
			Manufacturer:         strPtr("MedTech"),
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Baby Gentle Soap",
			Description:          "Hypoallergenic soap for sensitive skin",
			Price:                6.99,
			Stock:                150,
			Image:                "https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=400",
			Category:             "baby-care",
			RequiresPrescription: false,
			Manufacturer:         strPtr("BabyCare"),
		},
	}
}
