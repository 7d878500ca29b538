package repository

import (
	"context"
	"errors"

	"github.com/ShriyanshSinghPatel/AngularForm/helper"
	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OrderCollection = "orders"

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{collection: collection}
}

// Insert writes the whole order as a single document.
func (r *MongoOrderRepository) Insert(ctx context.Context, order models.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return helper.InfrastructureError{Op: "insert order", Err: err}
	}
	return nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, helper.NotFoundError{Resource: "order", ID: id}
	} else if err != nil {
		return models.Order{}, helper.InfrastructureError{Op: "find order", Err: err}
	}
	return normalizeOrder(order), nil
}

func (r *MongoOrderRepository) ListNewestFirst(ctx context.Context, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, helper.InfrastructureError{Op: "list orders", Err: err}
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, helper.InfrastructureError{Op: "decode orders", Err: err}
	}

	result := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, normalizeOrder(order))
	}
	return result, nil
}

func normalizeOrder(order models.Order) models.Order {
	if order.Items == nil {
		order.Items = []models.OrderLineItem{}
	}
	// bson datetimes decode in local time
	order.CreatedAt = order.CreatedAt.UTC()
	return order
}
