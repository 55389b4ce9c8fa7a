package services

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type ICartRepository interface {
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error)
	FindAll(ctx context.Context) ([]models.CartItem, error)
	FindByTshirtSizeColor(ctx context.Context, tshirtID primitive.ObjectID, size, color string) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Clear(ctx context.Context) error
}

// ITshirtResolver is the slice of the catalog the cart consults before any
// mutation.
type ITshirtResolver interface {
	GetTshirtByID(ctx context.Context, id primitive.ObjectID) (*models.Tshirt, error)
	GetTshirtByProductID(ctx context.Context, productID string) (*models.Tshirt, error)
}

// AddToCartInput carries a requested cart addition. Name, Price and
// ThumbnailImage override the catalog snapshot when supplied.
type AddToCartInput struct {
	TshirtID       string
	ProductID      string
	Name           string
	Price          *float64
	Quantity       int
	Size           string
	Color          string
	ThumbnailImage string
}

type CartService struct {
	repo    ICartRepository
	catalog ITshirtResolver
}

func NewCartService(repo ICartRepository, catalog ITshirtResolver) *CartService {
	return &CartService{repo: repo, catalog: catalog}
}

// GetCart returns all line items, newest-added first, plus the summary.
func (s *CartService) GetCart(ctx context.Context) ([]models.CartItem, *models.CartSummary, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, summarize(items), nil
}

// resolveTshirt locates the target t-shirt by internal key when the supplied
// identifier is 24 hex characters, and by product code otherwise.
func (s *CartService) resolveTshirt(ctx context.Context, input AddToCartInput) (*models.Tshirt, error) {
	if input.TshirtID != "" && objectIDPattern.MatchString(input.TshirtID) {
		id, err := primitive.ObjectIDFromHex(input.TshirtID)
		if err != nil {
			return nil, apperrors.Invalid("Invalid tshirtId format")
		}
		return s.catalog.GetTshirtByID(ctx, id)
	}
	if input.ProductID != "" {
		return s.catalog.GetTshirtByProductID(ctx, input.ProductID)
	}
	return nil, apperrors.Invalid("Either valid tshirtId (ObjectId) or productId is required")
}

// AddToCart merges into an existing (t-shirt, size, color) line item when one
// exists, and snapshots catalog fields into a new line otherwise.
func (s *CartService) AddToCart(ctx context.Context, input AddToCartInput) (*models.CartItem, bool, error) {
	tshirt, err := s.resolveTshirt(ctx, input)
	if err != nil {
		return nil, false, err
	}

	if !tshirt.HasSize(input.Size) {
		return nil, false, apperrors.Invalid(fmt.Sprintf("Size %s is not available for this t-shirt", input.Size))
	}
	if !tshirt.HasColor(input.Color) {
		return nil, false, apperrors.Invalid(fmt.Sprintf("Color %s is not available for this t-shirt", input.Color))
	}

	existing, err := s.repo.FindByTshirtSizeColor(ctx, tshirt.ID, input.Size, input.Color)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		updated, err := s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+input.Quantity)
		if err != nil {
			return nil, false, err
		}
		if updated == nil {
			return nil, false, apperrors.NotFound("Cart item not found")
		}
		return updated, true, nil
	}

	item := &models.CartItem{
		ProductID:      input.ProductID,
		TshirtID:       tshirt.ID,
		Name:           input.Name,
		Quantity:       input.Quantity,
		Size:           input.Size,
		Color:          input.Color,
		ThumbnailImage: input.ThumbnailImage,
	}
	if item.ProductID == "" {
		item.ProductID = tshirt.ProductID
	}
	if item.Name == "" {
		item.Name = tshirt.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	} else {
		item.Price = tshirt.Price
	}
	if item.ThumbnailImage == "" {
		item.ThumbnailImage = tshirt.ThumbnailImage
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

// UpdateCartItem sets the quantity exactly; it never merges.
func (s *CartService) UpdateCartItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Invalid("Quantity must be at least 1")
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("Cart item not found")
	}

	updated, err := s.repo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Cart item not found")
	}
	return updated, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, itemID primitive.ObjectID) (*models.CartItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("Cart item not found")
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) ClearCart(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *CartService) GetCartSummary(ctx context.Context) (*models.CartSummary, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// summarize totals quantities and prices, rounding the price total half-up
// on the cent boundary.
func summarize(items []models.CartItem) *models.CartSummary {
	summary := &models.CartSummary{}
	var totalPrice float64
	for _, item := range items {
		summary.TotalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	summary.TotalPrice = math.Round(totalPrice*100) / 100
	return summary
}
