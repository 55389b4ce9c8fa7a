package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a cart line embedded in an order. The item-level
// fulfillment flags are stored as submitted and are independent of the
// order-level flags.
type OrderItem struct {
	ProductID      string             `bson:"productId" json:"productId"`
	TshirtID       primitive.ObjectID `bson:"tshirtId" json:"tshirtId"`
	Name           string             `bson:"name" json:"name"`
	Price          float64            `bson:"price" json:"price"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	Size           string             `bson:"size" json:"size"`
	Color          string             `bson:"color" json:"color"`
	ThumbnailImage string             `bson:"thumbnailImage,omitempty" json:"thumbnailImage,omitempty"`
	IsConfirmed    bool               `bson:"isconfirmed" json:"isconfirmed"`
	IsPacked       bool               `bson:"ispacked" json:"ispacked"`
	IsDilivered    bool               `bson:"isdilivered" json:"isdilivered"`
}

// Order is an immutable-at-creation purchase record. Monetary figures are
// stored exactly as submitted and never recomputed from the items.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerName     string             `bson:"customerName" json:"customerName"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Whatsapp         string             `bson:"whatsapp" json:"whatsapp"`
	Address          string             `bson:"address" json:"address"`
	Items            []OrderItem        `bson:"items" json:"items"`
	Subtotal         float64            `bson:"subtotal" json:"subtotal"`
	Tax              float64            `bson:"tax" json:"tax"`
	Total            float64            `bson:"total" json:"total"`
	IsOrderConfirmed bool               `bson:"isOrderConfirmed" json:"isOrderConfirmed"`
	IsOrderPacking   bool               `bson:"isOrderPacking" json:"isOrderPacking"`
	IsOrderDelivered bool               `bson:"isOrderDelivered" json:"isOrderDelivered"`
	IsOrderCompleted bool               `bson:"isOrderCompleted" json:"isOrderCompleted"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderStatusUpdate carries a partial status patch. Nil means the flag was
// not supplied and must be left untouched.
type OrderStatusUpdate struct {
	IsOrderConfirmed *bool `json:"isOrderConfirmed,omitempty"`
	IsOrderPacking   *bool `json:"isOrderPacking,omitempty"`
	IsOrderDelivered *bool `json:"isOrderDelivered,omitempty"`
}

// Empty reports whether the patch carries no flags at all.
func (u OrderStatusUpdate) Empty() bool {
	return u.IsOrderConfirmed == nil && u.IsOrderPacking == nil && u.IsOrderDelivered == nil
}
