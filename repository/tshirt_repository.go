package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

type TshirtRepository struct {
	collection *mongo.Collection
}

func NewTshirtRepository(db *mongo.Database) *TshirtRepository {
	return &TshirtRepository{
		collection: db.Collection("tshirts"),
	}
}

func (r *TshirtRepository) Create(ctx context.Context, tshirt *models.Tshirt) (*models.Tshirt, error) {
	now := time.Now().UTC()
	tshirt.CreatedAt = now
	tshirt.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tshirt)
	if err != nil {
		return nil, apperrors.Storage("creating tshirt", err)
	}
	tshirt.ID = result.InsertedID.(primitive.ObjectID)
	return tshirt, nil
}

// FindLast returns the most recently created t-shirt, or nil on an empty
// catalog.
func (r *TshirtRepository) FindLast(ctx context.Context) (*models.Tshirt, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var tshirt models.Tshirt
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&tshirt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding last tshirt", err)
	}
	return &tshirt, nil
}

// FindByID returns nil without error when the id is unknown.
func (r *TshirtRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tshirt, error) {
	var tshirt models.Tshirt
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tshirt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding tshirt by id", err)
	}
	return &tshirt, nil
}

func (r *TshirtRepository) FindByProductID(ctx context.Context, productID string) (*models.Tshirt, error) {
	var tshirt models.Tshirt
	err := r.collection.FindOne(ctx, bson.M{"productId": productID}).Decode(&tshirt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding tshirt by productId", err)
	}
	return &tshirt, nil
}

func (r *TshirtRepository) FindAll(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Tshirt, int64, error) {
	direction := -1
	if sortOrder == "asc" {
		direction = 1
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: direction}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, apperrors.Storage("finding all tshirts", err)
	}
	defer cursor.Close(ctx)

	tshirts := []models.Tshirt{}
	if err := cursor.All(ctx, &tshirts); err != nil {
		return nil, 0, apperrors.Storage("decoding tshirts", err)
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, apperrors.Storage("counting tshirts", err)
	}

	return tshirts, total, nil
}

func (r *TshirtRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Tshirt, error) {
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Tshirt
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("updating tshirt", err)
	}
	return &updated, nil
}

func (r *TshirtRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.Storage("deleting tshirt", err)
	}
	return nil
}

// Search performs a case-insensitive substring match over name, description
// and productId.
func (r *TshirtRepository) Search(ctx context.Context, query string) ([]models.Tshirt, error) {
	regex := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": regex},
		{"description": regex},
		{"productId": regex},
	}}
	return r.findMany(ctx, filter, nil, "searching tshirts")
}

func (r *TshirtRepository) FindBySize(ctx context.Context, size string) ([]models.Tshirt, error) {
	return r.findMany(ctx, bson.M{"sizes": size}, nil, "finding tshirts by size")
}

func (r *TshirtRepository) FindByColor(ctx context.Context, color string) ([]models.Tshirt, error) {
	return r.findMany(ctx, bson.M{"colors": color}, nil, "finding tshirts by color")
}

func (r *TshirtRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Tshirt, error) {
	filter := bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}}
	return r.findMany(ctx, filter, nil, "finding tshirts by price range")
}

func (r *TshirtRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions, op string) ([]models.Tshirt, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Storage(op, err)
	}
	defer cursor.Close(ctx)

	tshirts := []models.Tshirt{}
	if err := cursor.All(ctx, &tshirts); err != nil {
		return nil, apperrors.Storage(op, err)
	}
	return tshirts, nil
}
