package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidSizes is the fixed set of sizes a t-shirt can be offered in.
var ValidSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "3XL"}

// IsValidSize reports whether size belongs to the fixed size enumeration.
func IsValidSize(size string) bool {
	for _, s := range ValidSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Tshirt is a catalog entry for one t-shirt design. ProductID is the
// human-readable unique code (TSH###); the ObjectID is the internal key.
type Tshirt struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID      string             `bson:"productId" json:"productId"`
	Name           string             `bson:"name" json:"name"`
	ThumbnailImage string             `bson:"thumbnailImage" json:"thumbnailImage"`
	OtherImages    []string           `bson:"otherImages" json:"otherImages"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	Sizes          []string           `bson:"sizes" json:"sizes"`
	Colors         []string           `bson:"colors" json:"colors"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasSize reports whether the t-shirt is currently offered in the given size.
func (t *Tshirt) HasSize(size string) bool {
	for _, s := range t.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the t-shirt is currently offered in the given color.
func (t *Tshirt) HasColor(color string) bool {
	for _, c := range t.Colors {
		if c == color {
			return true
		}
	}
	return false
}
