package order

import (
	"time"

	"wellnest-be/internal/cart"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Valid reports membership in the closed status set. Transitions between
// valid statuses are not restricted; roles gate who may transition.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Zip     string `bson:"zip" json:"zip"`
	Country string `bson:"country" json:"country"`
}

// Order is an immutable snapshot of cart contents plus a shipping address.
// Items and total are frozen at creation; only status changes afterwards.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"userId" json:"userId"`
	Items           []cart.Item `bson:"items" json:"items"`
	Total           float64     `bson:"total" json:"total"`
	Status          Status      `bson:"status" json:"status"`
	Address         Address     `bson:"address" json:"address"`
	PaymentIntentID *string     `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	PrescriptionID  *string     `bson:"prescriptionId,omitempty" json:"prescriptionId,omitempty"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
}

type CreateParams struct {
	Items          []cart.Item
	Total          float64
	Address        Address
	PrescriptionID *string
}
