package product

type Product struct {
	ID                   string  `bson:"id" json:"id"`
	Name                 string  `bson:"name" json:"name"`
	Description          string  `bson:"description" json:"description"`
	Price                float64 `bson:"price" json:"price"`
	Stock                int     `bson:"stock" json:"stock"`
	Image                string  `bson:"image" json:"image"`
	Category             string  `bson:"category" json:"category"`
	RequiresPrescription bool    `bson:"requiresPrescription" json:"requiresPrescription"`
	Strength             *string `bson:"strength,omitempty" json:"strength,omitempty"`
	Manufacturer         *string `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	SideEffects          *string `bson:"sideEffects,omitempty" json:"sideEffects,omitempty"`
	Usage                *string `bson:"usage,omitempty" json:"usage,omitempty"`
}

// Fields carries the mutable attributes for create and full replace.
type Fields struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Stock                int     `json:"stock"`
	Image                string  `json:"image"`
	Category             string  `json:"category"`
	RequiresPrescription bool    `json:"requiresPrescription"`
	Strength             *string `json:"strength,omitempty"`
	Manufacturer         *string `json:"manufacturer,omitempty"`
	SideEffects          *string `json:"sideEffects,omitempty"`
	Usage                *string `json:"usage,omitempty"`
}

// ListFilter constraints are AND-combined; a nil/empty member means no
// constraint, not "match empty".
type ListFilter struct {
	Category             string
	Search               string
	RequiresPrescription *bool
}
