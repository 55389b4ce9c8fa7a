package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

const productIDPrefix = "TSH"

var validSortFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"name":      true,
	"price":     true,
	"quantity":  true,
}

type ITshirtRepository interface {
	Create(ctx context.Context, tshirt *models.Tshirt) (*models.Tshirt, error)
	FindLast(ctx context.Context) (*models.Tshirt, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tshirt, error)
	FindByProductID(ctx context.Context, productID string) (*models.Tshirt, error)
	FindAll(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Tshirt, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Tshirt, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, query string) ([]models.Tshirt, error)
	FindBySize(ctx context.Context, size string) ([]models.Tshirt, error)
	FindByColor(ctx context.Context, color string) ([]models.Tshirt, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Tshirt, error)
}

// TshirtInput carries the fields accepted when creating a t-shirt. ProductID
// is optional; when empty the next sequential code is assigned.
type TshirtInput struct {
	ProductID      string
	Name           string
	ThumbnailImage string
	OtherImages    []string
	Description    string
	Price          float64
	Quantity       int
	Sizes          []string
	Colors         []string
}

// TshirtUpdate is a partial update; nil fields are left untouched.
type TshirtUpdate struct {
	ProductID      *string
	Name           *string
	ThumbnailImage *string
	OtherImages    []string
	Description    *string
	Price          *float64
	Quantity       *int
	Sizes          []string
	Colors         []string
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type TshirtService struct {
	repo ITshirtRepository
}

func NewTshirtService(repo ITshirtRepository) *TshirtService {
	return &TshirtService{repo: repo}
}

// generateProductID assigns the next sequential code by incrementing the
// numeric suffix of the most recently created t-shirt's code. Any failure
// falls back to the first code.
func (s *TshirtService) generateProductID(ctx context.Context) string {
	last, err := s.repo.FindLast(ctx)
	if err != nil {
		zap.L().Warn("Failed to read last tshirt, falling back to first product code", zap.Error(err))
		return productIDPrefix + "001"
	}

	nextNumber := 1
	if last != nil && last.ProductID != "" {
		lastNumber, err := strconv.Atoi(strings.TrimPrefix(last.ProductID, productIDPrefix))
		if err != nil {
			zap.L().Warn("Unparseable product code, falling back to first product code",
				zap.String("productId", last.ProductID))
		} else {
			nextNumber = lastNumber + 1
		}
	}

	return fmt.Sprintf("%s%03d", productIDPrefix, nextNumber)
}

func validateVariantFields(price float64, quantity int, sizes []string) error {
	if quantity < 0 {
		return apperrors.Invalid("Quantity cannot be negative")
	}
	if price < 0 {
		return apperrors.Invalid("Price cannot be negative")
	}
	for _, size := range sizes {
		if !models.IsValidSize(size) {
			return apperrors.Invalid("Invalid size provided")
		}
	}
	return nil
}

func (s *TshirtService) CreateTshirt(ctx context.Context, input TshirtInput) (*models.Tshirt, error) {
	if input.ProductID == "" {
		input.ProductID = s.generateProductID(ctx)
	} else {
		existing, err := s.repo.FindByProductID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.Conflict("T-shirt with this productId already exists")
		}
	}

	if err := validateVariantFields(input.Price, input.Quantity, input.Sizes); err != nil {
		return nil, err
	}

	tshirt := &models.Tshirt{
		ProductID:      input.ProductID,
		Name:           input.Name,
		ThumbnailImage: input.ThumbnailImage,
		OtherImages:    input.OtherImages,
		Description:    input.Description,
		Price:          input.Price,
		Quantity:       input.Quantity,
		Sizes:          input.Sizes,
		Colors:         input.Colors,
	}
	return s.repo.Create(ctx, tshirt)
}

func (s *TshirtService) GetTshirtByID(ctx context.Context, id primitive.ObjectID) (*models.Tshirt, error) {
	tshirt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tshirt == nil {
		return nil, apperrors.NotFound("T-shirt not found")
	}
	return tshirt, nil
}

func (s *TshirtService) GetTshirtByProductID(ctx context.Context, productID string) (*models.Tshirt, error) {
	tshirt, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if tshirt == nil {
		return nil, apperrors.NotFound("T-shirt not found")
	}
	return tshirt, nil
}

// GetAllTshirts clamps pagination and sorting to safe values before
// delegating to the repository.
func (s *TshirtService) GetAllTshirts(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Tshirt, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if !validSortFields[sortBy] {
		sortBy = "createdAt"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	tshirts, total, err := s.repo.FindAll(ctx, page, limit, sortBy, sortOrder)
	if err != nil {
		return nil, nil, err
	}

	pagination := &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return tshirts, pagination, nil
}

func (s *TshirtService) UpdateTshirt(ctx context.Context, id primitive.ObjectID, update TshirtUpdate) (*models.Tshirt, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("T-shirt not found")
	}

	updates := bson.M{}

	if update.ProductID != nil {
		other, err := s.repo.FindByProductID(ctx, *update.ProductID)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, apperrors.Conflict("Another t-shirt with this productId already exists")
		}
		updates["productId"] = *update.ProductID
	}
	if update.Quantity != nil {
		if *update.Quantity < 0 {
			return nil, apperrors.Invalid("Quantity cannot be negative")
		}
		updates["quantity"] = *update.Quantity
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, apperrors.Invalid("Price cannot be negative")
		}
		updates["price"] = *update.Price
	}
	if update.Sizes != nil {
		for _, size := range update.Sizes {
			if !models.IsValidSize(size) {
				return nil, apperrors.Invalid("Invalid size provided")
			}
		}
		updates["sizes"] = update.Sizes
	}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.ThumbnailImage != nil {
		updates["thumbnailImage"] = *update.ThumbnailImage
	}
	if update.OtherImages != nil {
		updates["otherImages"] = update.OtherImages
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Colors != nil {
		updates["colors"] = update.Colors
	}

	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("T-shirt not found")
	}
	return updated, nil
}

func (s *TshirtService) DeleteTshirt(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("T-shirt not found")
	}
	return s.repo.Delete(ctx, id)
}

func (s *TshirtService) SearchTshirts(ctx context.Context, query string) ([]models.Tshirt, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, apperrors.Invalid("Search query must be at least 2 characters long")
	}
	return s.repo.Search(ctx, query)
}

func (s *TshirtService) GetTshirtsBySize(ctx context.Context, size string) ([]models.Tshirt, error) {
	if !models.IsValidSize(size) {
		return nil, apperrors.Invalid("Invalid size")
	}
	return s.repo.FindBySize(ctx, size)
}

func (s *TshirtService) GetTshirtsByColor(ctx context.Context, color string) ([]models.Tshirt, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, apperrors.Invalid("Color cannot be empty")
	}
	return s.repo.FindByColor(ctx, color)
}

func (s *TshirtService) GetTshirtsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Tshirt, error) {
	if minPrice < 0 || maxPrice < 0 {
		return nil, apperrors.Invalid("Prices cannot be negative")
	}
	if minPrice > maxPrice {
		return nil, apperrors.Invalid("Minimum price cannot be greater than maximum price")
	}
	return s.repo.FindByPriceRange(ctx, minPrice, maxPrice)
}
