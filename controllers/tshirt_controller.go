package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// TshirtServiceAPI defines the interface for catalog service operations
type TshirtServiceAPI interface {
	CreateTshirt(ctx context.Context, input services.TshirtInput) (*models.Tshirt, error)
	GetTshirtByID(ctx context.Context, id primitive.ObjectID) (*models.Tshirt, error)
	GetTshirtByProductID(ctx context.Context, productID string) (*models.Tshirt, error)
	GetAllTshirts(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Tshirt, *services.Pagination, error)
	UpdateTshirt(ctx context.Context, id primitive.ObjectID, update services.TshirtUpdate) (*models.Tshirt, error)
	DeleteTshirt(ctx context.Context, id primitive.ObjectID) error
	SearchTshirts(ctx context.Context, query string) ([]models.Tshirt, error)
	GetTshirtsBySize(ctx context.Context, size string) ([]models.Tshirt, error)
	GetTshirtsByColor(ctx context.Context, color string) ([]models.Tshirt, error)
	GetTshirtsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Tshirt, error)
}

type TshirtController struct {
	service   TshirtServiceAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewTshirtController(service TshirtServiceAPI, cache *CacheManager) *TshirtController {
	return &TshirtController{
		service:   service,
		cache:     cache,
		validator: NewRequestValidator(),
	}
}

func (tc *TshirtController) CreateTshirt(c *gin.Context) {
	var req CreateTshirtRequest
	if !tc.validator.BindAndValidate(c, &req) {
		return
	}

	tshirt, err := tc.service.CreateTshirt(c.Request.Context(), services.TshirtInput{
		ProductID:      req.ProductID,
		Name:           req.Name,
		ThumbnailImage: req.ThumbnailImage,
		OtherImages:    req.OtherImages,
		Description:    req.Description,
		Price:          *req.Price,
		Quantity:       *req.Quantity,
		Sizes:          req.Sizes,
		Colors:         req.Colors,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	tc.cache.InvalidateTshirt(c.Request.Context(), tshirt.ID.Hex())
	zap.L().Info("T-shirt created", zap.String("productId", tshirt.ProductID))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "T-shirt created successfully",
		"data":    tshirt,
	})
}

func (tc *TshirtController) GetAllTshirts(c *gin.Context) {
	page, limit := ParsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	if cached, ok := tc.cache.GetList(c.Request.Context(), page, limit, sortBy, sortOrder); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	tshirts, pagination, err := tc.service.GetAllTshirts(c.Request.Context(), page, limit, sortBy, sortOrder)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"success":    true,
		"data":       tshirts,
		"pagination": pagination,
	}
	tc.cache.SetListAsync(page, limit, sortBy, sortOrder, response)
	c.JSON(http.StatusOK, response)
}

func (tc *TshirtController) GetTshirtByID(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	if cached, hit := tc.cache.GetTshirt(c.Request.Context(), id.Hex()); hit {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	tshirt, err := tc.service.GetTshirtByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	tc.cache.SetTshirtAsync(id.Hex(), tshirt)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirt})
}

func (tc *TshirtController) GetTshirtByProductID(c *gin.Context) {
	tshirt, err := tc.service.GetTshirtByProductID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirt})
}

func (tc *TshirtController) UpdateTshirt(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	var req UpdateTshirtRequest
	if !tc.validator.BindAndValidate(c, &req) {
		return
	}

	tshirt, err := tc.service.UpdateTshirt(c.Request.Context(), id, services.TshirtUpdate{
		ProductID:      req.ProductID,
		Name:           req.Name,
		ThumbnailImage: req.ThumbnailImage,
		OtherImages:    req.OtherImages,
		Description:    req.Description,
		Price:          req.Price,
		Quantity:       req.Quantity,
		Sizes:          req.Sizes,
		Colors:         req.Colors,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	tc.cache.InvalidateTshirt(c.Request.Context(), id.Hex())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "T-shirt updated successfully",
		"data":    tshirt,
	})
}

func (tc *TshirtController) DeleteTshirt(c *gin.Context) {
	id, ok := ParseObjectID(c, "id")
	if !ok {
		return
	}

	if err := tc.service.DeleteTshirt(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	tc.cache.InvalidateTshirt(c.Request.Context(), id.Hex())
	zap.L().Info("T-shirt deleted", zap.String("id", id.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "T-shirt deleted successfully",
	})
}

func (tc *TshirtController) SearchTshirts(c *gin.Context) {
	tshirts, err := tc.service.SearchTshirts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirts})
}

func (tc *TshirtController) GetTshirtsBySize(c *gin.Context) {
	tshirts, err := tc.service.GetTshirtsBySize(c.Request.Context(), c.Param("size"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirts})
}

func (tc *TshirtController) GetTshirtsByColor(c *gin.Context) {
	tshirts, err := tc.service.GetTshirtsByColor(c.Request.Context(), c.Param("color"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirts})
}

func (tc *TshirtController) GetTshirtsByPriceRange(c *gin.Context) {
	minPrice, err := strconv.ParseFloat(c.DefaultQuery("min", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid minimum price"})
		return
	}
	maxPrice, err := strconv.ParseFloat(c.DefaultQuery("max", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid maximum price"})
		return
	}

	tshirts, err := tc.service.GetTshirtsByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tshirts})
}
