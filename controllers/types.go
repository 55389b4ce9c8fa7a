package controllers

// CreateTshirtRequest is the payload for adding a catalog entry. ProductID is
// optional; when omitted the next sequential code is assigned.
type CreateTshirtRequest struct {
	ProductID      string   `json:"productId" validate:"omitempty"`
	Name           string   `json:"name" validate:"required,max=100"`
	ThumbnailImage string   `json:"thumbnailImage" validate:"required"`
	OtherImages    []string `json:"otherImages" validate:"omitempty,dive,required"`
	Description    string   `json:"description" validate:"required,max=1000"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	Quantity       *int     `json:"quantity" validate:"required,gte=0"`
	Sizes          []string `json:"sizes" validate:"required,min=1,dive,oneof=XS S M L XL XXL 3XL"`
	Colors         []string `json:"colors" validate:"required,min=1,dive,required"`
}

// UpdateTshirtRequest is a partial update; absent fields stay untouched.
type UpdateTshirtRequest struct {
	ProductID      *string  `json:"productId" validate:"omitempty"`
	Name           *string  `json:"name" validate:"omitempty,max=100"`
	ThumbnailImage *string  `json:"thumbnailImage" validate:"omitempty"`
	OtherImages    []string `json:"otherImages" validate:"omitempty,dive,required"`
	Description    *string  `json:"description" validate:"omitempty,max=1000"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity       *int     `json:"quantity" validate:"omitempty,gte=0"`
	Sizes          []string `json:"sizes" validate:"omitempty,dive,oneof=XS S M L XL XXL 3XL"`
	Colors         []string `json:"colors" validate:"omitempty,dive,required"`
}

// AddToCartRequest accepts either the internal key (tshirtId) or the product
// code (productId); at least one must be present.
type AddToCartRequest struct {
	TshirtID       string   `json:"tshirtId" validate:"required_without=ProductID"`
	ProductID      string   `json:"productId" validate:"required_without=TshirtID"`
	Name           string   `json:"name" validate:"omitempty,max=100"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity       *int     `json:"quantity" validate:"required,min=1"`
	Size           string   `json:"size" validate:"required,oneof=XS S M L XL XXL 3XL"`
	Color          string   `json:"color" validate:"required"`
	ThumbnailImage string   `json:"thumbnailImage" validate:"omitempty"`
}

type UpdateCartRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,min=1"`
}

type OrderItemRequest struct {
	ProductID      string   `json:"productId" validate:"required"`
	TshirtID       string   `json:"tshirtId" validate:"required,len=24,hexadecimal"`
	Name           string   `json:"name" validate:"required,max=100"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	Quantity       *int     `json:"quantity" validate:"required,min=1"`
	Size           string   `json:"size" validate:"required,oneof=XS S M L XL XXL 3XL"`
	Color          string   `json:"color" validate:"required"`
	ThumbnailImage string   `json:"thumbnailImage" validate:"omitempty"`
	IsConfirmed    bool     `json:"isconfirmed"`
	IsPacked       bool     `json:"ispacked"`
	IsDilivered    bool     `json:"isdilivered"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required,max=100"`
	Email        string             `json:"email" validate:"omitempty,email"`
	Whatsapp     string             `json:"whatsapp" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal     *float64           `json:"subtotal" validate:"required,gte=0"`
	Tax          *float64           `json:"tax" validate:"required,gte=0"`
	Total        *float64           `json:"total" validate:"required,gte=0"`
}

// UpdateOrderStatusRequest must carry at least one flag; that is checked in
// the handler since validator cannot express it across three pointers.
type UpdateOrderStatusRequest struct {
	IsOrderConfirmed *bool `json:"isOrderConfirmed"`
	IsOrderPacking   *bool `json:"isOrderPacking"`
	IsOrderDelivered *bool `json:"isOrderDelivered"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
