package services

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindAll(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Order, int64, error)
	FindByEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByWhatsApp(ctx context.Context, whatsapp string) ([]models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatusUpdate) (*models.Order, error)
	MarkCompleted(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

var orderSortFields = map[string]bool{
	"createdAt":    true,
	"updatedAt":    true,
	"total":        true,
	"customerName": true,
}

// OrderPagination mirrors the listing metadata shape for orders.
type OrderPagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalOrders   int64 `json:"totalOrders"`
	OrdersPerPage int   `json:"ordersPerPage"`
}

type OrderService struct {
	repo IOrderRepository
}

func NewOrderService(repo IOrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// CreateOrder persists the order as submitted. Aggregate validation happens
// at the boundary; the four status flags always start false.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, apperrors.Invalid("Order must have at least one item")
	}

	order.IsOrderConfirmed = false
	order.IsOrderPacking = false
	order.IsOrderDelivered = false
	order.IsOrderCompleted = false

	return s.repo.Create(ctx, order)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Order, *OrderPagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if !orderSortFields[sortBy] {
		sortBy = "createdAt"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	orders, total, err := s.repo.FindAll(ctx, page, limit, sortBy, sortOrder)
	if err != nil {
		return nil, nil, err
	}

	pagination := &OrderPagination{
		CurrentPage:   page,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
		TotalOrders:   total,
		OrdersPerPage: limit,
	}
	return orders, pagination, nil
}

// GetOrdersByEmail matches exactly, newest first. An empty result is not an
// error.
func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *OrderService) GetOrdersByWhatsApp(ctx context.Context, whatsapp string) ([]models.Order, error) {
	return s.repo.FindByWhatsApp(ctx, whatsapp)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Order not found")
	}
	return updated, nil
}

// UpdateOrderStatus sets only the supplied flags. No ordering between
// confirmed, packing and delivered is enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatusUpdate) (*models.Order, error) {
	if status.Empty() {
		return nil, apperrors.Invalid("At least one status field is required")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Order not found")
	}
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return order, nil
}

// MarkOrderCompleted sets only isOrderCompleted; the other flags are left as
// they are.
func (s *OrderService) MarkOrderCompleted(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order not found")
	}

	completed, err := s.repo.MarkCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		return nil, apperrors.NotFound("Order not found")
	}
	return completed, nil
}
