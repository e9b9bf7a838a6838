package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// diagramsCollection is the Mongo collection holding diagram documents.
const diagramsCollection = "diagrams"

// MongoStore is a MongoDB-backed DiagramStore.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and uses the given database.
// The connection is verified with a ping before returning.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(diagramsCollection),
	}, nil
}

// Get returns the diagram with the given ID, or ErrNotFound.
func (s *MongoStore) Get(ctx context.Context, id string) (Diagram, error) {
	var d Diagram
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Diagram{}, ErrNotFound
	}
	if err != nil {
		return Diagram{}, fmt.Errorf("find diagram %s: %w", id, err)
	}
	return d, nil
}

// Save inserts or replaces a diagram by ID.
func (s *MongoStore) Save(ctx context.Context, d Diagram) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts); err != nil {
		return fmt.Errorf("save diagram %s: %w", d.ID, err)
	}
	return nil
}

// Delete removes a diagram. Returns ErrNotFound if absent.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete diagram %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all diagrams, most recently updated first.
func (s *MongoStore) List(ctx context.Context) ([]Diagram, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list diagrams: %w", err)
	}
	defer cursor.Close(ctx)

	var out []Diagram
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode diagrams: %w", err)
	}
	return out, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements DiagramStore.
var _ DiagramStore = (*MongoStore)(nil)
