package cart

import "time"

// Item is a denormalized snapshot of a product at the time the cart was
// written. It is never re-validated against the live catalog.
type Item struct {
	ProductID string  `bson:"productId" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
}

// Cart is a single document per user, replaced wholesale on every write.
type Cart struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Items     []Item    `bson:"items" json:"items"`
	Total     float64   `bson:"total" json:"total"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TotalOf sums price times quantity over the submitted line items.
func TotalOf(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
