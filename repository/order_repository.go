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

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, apperrors.Storage("creating order", err)
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("finding order by id", err)
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]models.Order, int64, error) {
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
		return nil, 0, apperrors.Storage("finding all orders", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, apperrors.Storage("decoding orders", err)
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, apperrors.Storage("counting orders", err)
	}

	return orders, total, nil
}

func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.findMany(ctx, bson.M{"email": email}, "finding orders by email")
}

func (r *OrderRepository) FindByWhatsApp(ctx context.Context, whatsapp string) ([]models.Order, error) {
	return r.findMany(ctx, bson.M{"whatsapp": whatsapp}, "finding orders by whatsapp")
}

func (r *OrderRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Order, error) {
	return r.applyUpdate(ctx, id, updates, "updating order")
}

// UpdateStatus sets only the supplied status flags.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatusUpdate) (*models.Order, error) {
	updates := bson.M{}
	if status.IsOrderConfirmed != nil {
		updates["isOrderConfirmed"] = *status.IsOrderConfirmed
	}
	if status.IsOrderPacking != nil {
		updates["isOrderPacking"] = *status.IsOrderPacking
	}
	if status.IsOrderDelivered != nil {
		updates["isOrderDelivered"] = *status.IsOrderDelivered
	}
	return r.applyUpdate(ctx, id, updates, "updating order status")
}

func (r *OrderRepository) MarkCompleted(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return r.applyUpdate(ctx, id, bson.M{"isOrderCompleted": true}, "marking order as completed")
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.Storage("deleting order", err)
	}
	return nil
}

func (r *OrderRepository) applyUpdate(ctx context.Context, id primitive.ObjectID, updates bson.M, op string) (*models.Order, error) {
	updates["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage(op, err)
	}
	return &updated, nil
}

func (r *OrderRepository) findMany(ctx context.Context, filter bson.M, op string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Storage(op, err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Storage(op, err)
	}
	return orders, nil
}
