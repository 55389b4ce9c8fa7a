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
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// --- Mock Service ---
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context) ([]models.CartItem, *models.CartSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.CartItem), args.Get(1).(*models.CartSummary), args.Error(2)
}

func (m *MockCartService) AddToCart(ctx context.Context, input services.AddToCartInput) (*models.CartItem, bool, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.CartItem), args.Bool(1), args.Error(2)
}

func (m *MockCartService) UpdateCartItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, itemID primitive.ObjectID) (*models.CartItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartService) GetCartSummary(ctx context.Context) (*models.CartSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartSummary), args.Error(1)
}

// --- Tests ---

func TestAddToCartController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - New Item - 200 OK", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		item := &models.CartItem{ID: primitive.NewObjectID(), Name: "Classic Tee", Quantity: 2}
		mockService.On("AddToCart", mock.Anything, mock.MatchedBy(func(input services.AddToCartInput) bool {
			return input.ProductID == "TSH001" && input.Quantity == 2 && input.Size == "M"
		})).Return(item, false, nil).Once()

		router := gin.New()
		router.POST("/cart", cartController.AddToCart)

		payload := `{"productId": "TSH001", "quantity": 2, "size": "M", "color": "Red"}`
		req, _ := http.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Item added to cart successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Merged Item Reports Different Message", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		item := &models.CartItem{ID: primitive.NewObjectID(), Quantity: 5}
		mockService.On("AddToCart", mock.Anything, mock.Anything).Return(item, true, nil).Once()

		router := gin.New()
		router.POST("/cart", cartController.AddToCart)

		payload := `{"productId": "TSH001", "quantity": 3, "size": "M", "color": "Red"}`
		req, _ := http.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Cart item quantity updated")
	})

	t.Run("Failure - Missing Identifiers - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		router := gin.New()
		router.POST("/cart", cartController.AddToCart)

		payload := `{"quantity": 1, "size": "M", "color": "Red"}`
		req, _ := http.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "AddToCart")
	})

	t.Run("Failure - Zero Quantity - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		router := gin.New()
		router.POST("/cart", cartController.AddToCart)

		payload := `{"productId": "TSH001", "quantity": 0, "size": "M", "color": "Red"}`
		req, _ := http.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "AddToCart")
	})
}

func TestGetCartController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Returns Items And Summary Side By Side", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		items := []models.CartItem{{Name: "Classic Tee", Price: 20, Quantity: 2}}
		summary := &models.CartSummary{TotalItems: 2, TotalPrice: 40}
		mockService.On("GetCart", mock.Anything).Return(items, summary, nil).Once()

		router := gin.New()
		router.GET("/cart", cartController.GetCart)

		req, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"totalItems":2`)
		assert.Contains(t, recorder.Body.String(), `"totalPrice":40`)
	})
}

func TestRemoveFromCartController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - Item ID From Query String", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		itemID := primitive.NewObjectID()
		mockService.On("RemoveFromCart", mock.Anything, itemID).
			Return(&models.CartItem{ID: itemID, Name: "Classic Tee"}, nil).Once()

		router := gin.New()
		router.DELETE("/cart", cartController.RemoveFromCart)

		req, _ := http.NewRequest(http.MethodDelete, "/cart?itemId="+itemID.Hex(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Item removed from cart successfully")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Malformed Item ID - 400 Bad Request", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		router := gin.New()
		router.DELETE("/cart", cartController.RemoveFromCart)

		req, _ := http.NewRequest(http.MethodDelete, "/cart?itemId=nope", nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "RemoveFromCart")
	})

	t.Run("Failure - Unknown Item - 404 Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(MockCartService)
		cartController := NewCartController(mockService)

		itemID := primitive.NewObjectID()
		mockService.On("RemoveFromCart", mock.Anything, itemID).
			Return(nil, apperrors.NotFound("Cart item not found")).Once()

		router := gin.New()
		router.DELETE("/cart", cartController.RemoveFromCart)

		req, _ := http.NewRequest(http.MethodDelete, "/cart?itemId="+itemID.Hex(), nil)
		recorder := httptest.NewRecorder()

		// Act
		router.ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Cart item not found")
	})
}
