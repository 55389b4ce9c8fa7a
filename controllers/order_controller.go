package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// OrderServiceAPI defines the interface for order service operations
type OrderServiceAPI interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetAllOrders(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Order, *services.OrderPagination, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	GetOrdersByWhatsApp(ctx context.Context, whatsapp string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatusUpdate) (*models.Order, error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	MarkOrderCompleted(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}

type OrderController struct {
	service   OrderServiceAPI
	validator *RequestValidator
}

func NewOrderController(service OrderServiceAPI) *OrderController {
	return &OrderController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !oc.validator.BindAndValidate(c, &req) {
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		tshirtID, err := primitive.ObjectIDFromHex(it.TshirtID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid tshirtId format"})
			return
		}
		items = append(items, models.OrderItem{
			ProductID:      it.ProductID,
			TshirtID:       tshirtID,
			Name:           it.Name,
			Price:          *it.Price,
			Quantity:       *it.Quantity,
			Size:           it.Size,
			Color:          it.Color,
			ThumbnailImage: it.ThumbnailImage,
			IsConfirmed:    it.IsConfirmed,
			IsPacked:       it.IsPacked,
			IsDilivered:    it.IsDilivered,
		})
	}

	order, err := oc.service.CreateOrder(c.Request.Context(), &models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Whatsapp:     req.Whatsapp,
		Address:      req.Address,
		Items:        items,
		Subtotal:     *req.Subtotal,
		Tax:          *req.Tax,
		Total:        *req.Total,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("Order created",
		zap.String("id", order.ID.Hex()),
		zap.Int("items", len(order.Items)),
	)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data":    order,
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	order, err := oc.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := ParsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	orders, pagination, err := oc.service.GetAllOrders(c.Request.Context(), page, limit, sortBy, sortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       orders,
		"pagination": pagination,
	})
}

func (oc *OrderController) GetOrdersByEmail(c *gin.Context) {
	orders, err := oc.service.GetOrdersByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

func (oc *OrderController) GetOrdersByWhatsApp(c *gin.Context) {
	orders, err := oc.service.GetOrdersByWhatsApp(c.Request.Context(), c.Param("whatsapp"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// UpdateOrder replaces the submitted fields verbatim; nothing is recomputed.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	var updates bson.M
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format. Please check your request body."})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No update fields provided"})
		return
	}
	delete(updates, "_id")

	order, err := oc.service.UpdateOrder(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"data":    order,
	})
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if !oc.validator.BindAndValidate(c, &req) {
		return
	}

	status := models.OrderStatusUpdate{
		IsOrderConfirmed: req.IsOrderConfirmed,
		IsOrderPacking:   req.IsOrderPacking,
		IsOrderDelivered: req.IsOrderDelivered,
	}
	if status.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one status field is required"})
		return
	}

	order, err := oc.service.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	order, err := oc.service.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
		"data":    order,
	})
}

func (oc *OrderController) MarkOrderCompleted(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	order, err := oc.service.MarkOrderCompleted(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order marked as completed successfully",
		"data":    order,
	})
}
