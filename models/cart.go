package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one resolved (t-shirt, size, color) selection held in the
// shared cart. Name, price and thumbnail are a snapshot taken at add time;
// TshirtID is kept as a traceability pointer only.
type CartItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID      string             `bson:"productId" json:"productId"`
	TshirtID       primitive.ObjectID `bson:"tshirtId" json:"tshirtId"`
	Name           string             `bson:"name" json:"name"`
	Price          float64            `bson:"price" json:"price"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	Size           string             `bson:"size" json:"size"`
	Color          string             `bson:"color" json:"color"`
	ThumbnailImage string             `bson:"thumbnailImage,omitempty" json:"thumbnailImage,omitempty"`
	AddedAt        time.Time          `bson:"addedAt" json:"addedAt"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartSummary aggregates the whole cart.
type CartSummary struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}
