package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// CartServiceAPI defines the interface for cart service operations
type CartServiceAPI interface {
	GetCart(ctx context.Context) ([]models.CartItem, *models.CartSummary, error)
	AddToCart(ctx context.Context, input services.AddToCartInput) (*models.CartItem, bool, error)
	UpdateCartItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, itemID primitive.ObjectID) (*models.CartItem, error)
	ClearCart(ctx context.Context) error
	GetCartSummary(ctx context.Context) (*models.CartSummary, error)
}

type CartController struct {
	service   CartServiceAPI
	validator *RequestValidator
}

func NewCartController(service CartServiceAPI) *CartController {
	return &CartController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

func (cc *CartController) GetCart(c *gin.Context) {
	items, summary, err := cc.service.GetCart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"summary": summary,
	})
}

func (cc *CartController) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if !cc.validator.BindAndValidate(c, &req) {
		return
	}

	item, merged, err := cc.service.AddToCart(c.Request.Context(), services.AddToCartInput{
		TshirtID:       req.TshirtID,
		ProductID:      req.ProductID,
		Name:           req.Name,
		Price:          req.Price,
		Quantity:       *req.Quantity,
		Size:           req.Size,
		Color:          req.Color,
		ThumbnailImage: req.ThumbnailImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Item added to cart successfully"
	if merged {
		message = "Cart item quantity updated"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    item,
	})
}

func (cc *CartController) UpdateCartItem(c *gin.Context) {
	var req UpdateCartRequest
	if !cc.validator.BindAndValidate(c, &req) {
		return
	}

	itemID, err := primitive.ObjectIDFromHex(req.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid itemId format"})
		return
	}

	item, err := cc.service.UpdateCartItem(c.Request.Context(), itemID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart item updated successfully",
		"data":    item,
	})
}

// RemoveFromCart reads itemId from the query string.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Query("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid itemId format"})
		return
	}

	item, err := cc.service.RemoveFromCart(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart successfully",
		"data":    item,
	})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.service.ClearCart(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared successfully",
	})
}

func (cc *CartController) GetCartSummary(c *gin.Context) {
	summary, err := cc.service.GetCartSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
