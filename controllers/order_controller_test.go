package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// --- Mock Service ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) GetAllOrders(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Order, *services.OrderPagination, error) {
	args := m.Called(ctx, page, limit, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(*services.OrderPagination), args.Error(2)
}

func (m *MockOrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrdersByWhatsApp(ctx context.Context, whatsapp string) ([]models.Order, error) {
	args := m.Called(ctx, whatsapp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatusUpdate) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) MarkOrderCompleted(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// --- Tests ---

func TestCreateOrderController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201 Created", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		tshirtID := primitive.NewObjectID()
		created := &models.Order{ID: primitive.NewObjectID(), CustomerName: "Asha Perera"}
		mockService.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.CustomerName == "Asha Perera" &&
				len(o.Items) == 1 &&
				o.Items[0].TshirtID == tshirtID &&
				o.Total == 44
		})).Return(created, nil).Once()

		router := gin.New()
		router.POST("/orders", orderController.CreateOrder)

		payload := `{
			"customerName": "Asha Perera",
			"whatsapp": "+94771234567",
			"address": "12 Galle Road, Colombo",
			"items": [{
				"productId": "TSH001",
				"tshirtId": "` + tshirtID.Hex() + `",
				"name": "Classic Tee",
				"price": 20,
				"quantity": 2,
				"size": "M",
				"color": "Red"
			}],
			"subtotal": 40,
			"tax": 4,
			"total": 44
		}`
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order created successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Items - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		router := gin.New()
		router.POST("/orders", orderController.CreateOrder)

		payload := `{
			"customerName": "Asha Perera",
			"whatsapp": "+94771234567",
			"address": "12 Galle Road, Colombo",
			"items": [],
			"subtotal": 0,
			"tax": 0,
			"total": 0
		}`
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Failure - Malformed Item TshirtID - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		router := gin.New()
		router.POST("/orders", orderController.CreateOrder)

		payload := `{
			"customerName": "Asha Perera",
			"whatsapp": "+94771234567",
			"address": "12 Galle Road, Colombo",
			"items": [{
				"tshirtId": "short",
				"name": "Classic Tee",
				"price": 20,
				"quantity": 2,
				"size": "M",
				"color": "Red"
			}],
			"subtotal": 40,
			"tax": 4,
			"total": 44
		}`
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreateOrder")
	})
}

func TestUpdateOrderStatusController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - Partial Patch - 200 OK", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		updated := &models.Order{ID: id, IsOrderConfirmed: true}
		mockService.On("UpdateOrderStatus", mock.Anything, id, mock.MatchedBy(func(s models.OrderStatusUpdate) bool {
			return s.IsOrderConfirmed != nil && *s.IsOrderConfirmed &&
				s.IsOrderPacking == nil && s.IsOrderDelivered == nil
		})).Return(updated, nil).Once()

		router := gin.New()
		router.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)

		payload := `{"isOrderConfirmed": true}`
		req, _ := http.NewRequest(http.MethodPatch, "/orders/"+id.Hex()+"/status", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order status updated successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Patch - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		router := gin.New()
		router.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)

		req, _ := http.NewRequest(http.MethodPatch, "/orders/"+id.Hex()+"/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "At least one status field is required")
		mockService.AssertNotCalled(t, "UpdateOrderStatus")
	})
}

func TestUpdateOrderController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Strips Immutable ID Field From Patch", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		mockService.On("UpdateOrder", mock.Anything, id, mock.MatchedBy(func(updates bson.M) bool {
			_, hasID := updates["_id"]
			return !hasID && updates["address"] == "7 Marine Drive, Colombo"
		})).Return(&models.Order{ID: id}, nil).Once()

		router := gin.New()
		router.PUT("/orders/:id", orderController.UpdateOrder)

		payload := `{"_id": "` + primitive.NewObjectID().Hex() + `", "address": "7 Marine Drive, Colombo"}`
		req, _ := http.NewRequest(http.MethodPut, "/orders/"+id.Hex(), bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Body - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		router := gin.New()
		router.PUT("/orders/:id", orderController.UpdateOrder)

		req, _ := http.NewRequest(http.MethodPut, "/orders/"+id.Hex(), bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No update fields provided")
		mockService.AssertNotCalled(t, "UpdateOrder")
	})
}

func TestDeleteOrderController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Failure - Unknown Order - 404 Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		mockService.On("DeleteOrder", mock.Anything, id).
			Return(nil, apperrors.NotFound("Order not found")).Once()

		router := gin.New()
		router.DELETE("/orders/:id", orderController.DeleteOrder)

		req, _ := http.NewRequest(http.MethodDelete, "/orders/"+id.Hex(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order not found")
	})

	t.Run("Success - Returns Deleted Order - 200 OK", func(t *testing.T) {
		// Arrange
		mockService := new(MockOrderService)
		orderController := NewOrderController(mockService)

		id := primitive.NewObjectID()
		mockService.On("DeleteOrder", mock.Anything, id).
			Return(&models.Order{ID: id, CustomerName: "Asha Perera"}, nil).Once()

		router := gin.New()
		router.DELETE("/orders/:id", orderController.DeleteOrder)

		req, _ := http.NewRequest(http.MethodDelete, "/orders/"+id.Hex(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Order deleted successfully")
		assert.Contains(t, recorder.Body.String(), "Asha Perera")
	})
}
