package user

import (
	"time"

	"wellnest-be/internal/auth"
)

type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name"`
	Phone     *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      auth.Role `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}
