package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	now := time.Now().UTC()
	item.AddedAt = now
	item.CreatedAt = now
	item.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, apperrors.Storage("creating cart item", err)
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding cart item by id", err)
	}
	return &item, nil
}

// FindAll returns every line item, newest-added first.
func (r *CartRepository) FindAll(ctx context.Context) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Storage("finding all cart items", err)
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperrors.Storage("decoding cart items", err)
	}
	return items, nil
}

// FindByTshirtSizeColor locates the single line item for a
// (t-shirt, size, color) combination, or nil when none exists.
func (r *CartRepository) FindByTshirtSizeColor(ctx context.Context, tshirtID primitive.ObjectID, size, color string) (*models.CartItem, error) {
	filter := bson.M{"tshirtId": tshirtID, "size": size, "color": color}

	var item models.CartItem
	err := r.collection.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding cart item by tshirt, size and color", err)
	}
	return &item, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*models.CartItem, error) {
	update := bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CartItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("updating cart item", err)
	}
	return &updated, nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.Storage("deleting cart item", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return apperrors.Storage("clearing cart", err)
	}
	return nil
}
