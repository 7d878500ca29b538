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

const MenuCollection = "menu_items"

// MongoMenuRepository is the catalog store. Items are addressed by their "id"
// field, which carries a unique index; "_id" is left to the driver.
type MongoMenuRepository struct {
	collection *mongo.Collection
}

func NewMongoMenuRepository(collection *mongo.Collection) *MongoMenuRepository {
	return &MongoMenuRepository{collection: collection}
}

func (r *MongoMenuRepository) Insert(ctx context.Context, item models.MenuItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return helper.ValidationError{Field: "id", Message: "menu item id already exists"}
	}
	if err != nil {
		return helper.InfrastructureError{Op: "insert menu item", Err: err}
	}
	return nil
}

func (r *MongoMenuRepository) FindByID(ctx context.Context, id string) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, helper.NotFoundError{Resource: "menu item", ID: id}
	} else if err != nil {
		return models.MenuItem{}, helper.InfrastructureError{Op: "find menu item", Err: err}
	}
	return normalizeMenuItem(item), nil
}

// List returns up to limit items. An empty category means every category.
func (r *MongoMenuRepository) List(ctx context.Context, category models.MenuCategory, limit int64) ([]models.MenuItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, helper.InfrastructureError{Op: "list menu items", Err: err}
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, helper.InfrastructureError{Op: "decode menu items", Err: err}
	}

	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		result = append(result, normalizeMenuItem(item))
	}
	return result, nil
}

// Replace overwrites every field except the id and returns the stored record.
func (r *MongoMenuRepository) Replace(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	updateObj := bson.D{
		{Key: "name", Value: item.Name},
		{Key: "description", Value: item.Description},
		{Key: "price", Value: item.Price},
		{Key: "category", Value: item.Category},
		{Key: "is_available", Value: item.IsAvailable},
		{Key: "is_spicy", Value: item.IsSpicy},
		{Key: "preparation_time", Value: item.PreparationTime},
		{Key: "ingredients", Value: item.Ingredients},
		{Key: "image_url", Value: item.ImageURL},
	}

	opt := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false)

	var updated models.MenuItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": item.ID}, bson.D{{Key: "$set", Value: updateObj}}, opt).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, helper.NotFoundError{Resource: "menu item", ID: item.ID}
	} else if err != nil {
		return models.MenuItem{}, helper.InfrastructureError{Op: "update menu item", Err: err}
	}
	return normalizeMenuItem(updated), nil
}

func (r *MongoMenuRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return helper.InfrastructureError{Op: "delete menu item", Err: err}
	}
	if result.DeletedCount == 0 {
		return helper.NotFoundError{Resource: "menu item", ID: id}
	}
	return nil
}

// ReplaceAll empties the catalog and inserts items. The two steps are not atomic.
func (r *MongoMenuRepository) ReplaceAll(ctx context.Context, items []models.MenuItem) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return helper.InfrastructureError{Op: "clear menu items", Err: err}
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return helper.InfrastructureError{Op: "insert menu items", Err: err}
	}
	return nil
}

// Records written by older clients may carry a null ingredient list.
func normalizeMenuItem(item models.MenuItem) models.MenuItem {
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}
	return item
}
