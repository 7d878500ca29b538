package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore groups the two collections behind one client.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	Menu   *MongoMenuRepository
	Orders *MongoOrderRepository
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client: client,
		db:     db,
		Menu:   NewMongoMenuRepository(db.Collection(MenuCollection)),
		Orders: NewMongoOrderRepository(db.Collection(OrderCollection)),
	}
}

// EnsureIndexes enforces id uniqueness in both collections and backs the
// newest-first order listing.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	uniqueID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unique"),
	}

	if _, err := s.db.Collection(MenuCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueID,
		{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category")},
	}); err != nil {
		return fmt.Errorf("create %s indexes: %w", MenuCollection, err)
	}

	if _, err := s.db.Collection(OrderCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueID,
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
	}); err != nil {
		return fmt.Errorf("create %s indexes: %w", OrderCollection, err)
	}

	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
