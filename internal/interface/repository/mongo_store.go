package repository

import (
	"context"
	"fmt"

	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/pkg/rawdoc"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentStore implements the DocumentStore interface
type MongoDocumentStore struct {
	db *mongo.Database
}

// NewMongoDocumentStore creates a new MongoDB document store
func NewMongoDocumentStore(db *mongo.Database) repository.DocumentStore {
	// Create indexes for the hot query paths
	ctx := context.Background()

	db.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.M{"userId": 1}},
		{Keys: bson.M{"type": 1}},
	})

	db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.M{"referralCode": 1}},
	})

	db.Collection("partners").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	})

	return &MongoDocumentStore{
		db: db,
	}
}

// Find runs a collection-scoped query and returns the raw documents
func (s *MongoDocumentStore) Find(ctx context.Context, collection string, q repository.Query) ([]rawdoc.Record, error) {
	filter := buildFilter(q.Filters)

	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var records []rawdoc.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		records = append(records, toRecord(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s cursor: %w", collection, err)
	}

	return records, nil
}

// Get fetches a single document by id. A missing document is (nil, nil),
// not an error.
func (s *MongoDocumentStore) Get(ctx context.Context, collection, id string) (*rawdoc.Record, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	rec := toRecord(doc)
	return &rec, nil
}

// Count returns the server-side document count for a collection
func (s *MongoDocumentStore) Count(ctx context.Context, collection string) (int64, error) {
	count, err := s.db.Collection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}

// Insert creates a document, generating a string id when none is supplied
func (s *MongoDocumentStore) Insert(ctx context.Context, collection string, data rawdoc.Doc) (string, error) {
	doc := bson.M(data)
	id, ok := doc["_id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		doc = make(bson.M, len(data)+1)
		for k, v := range data {
			doc[k] = v
		}
		doc["_id"] = id
	}

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return id, nil
}

// Update applies a partial $set update to a document
func (s *MongoDocumentStore) Update(ctx context.Context, collection, id string, set rawdoc.Doc) error {
	result, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M(set)},
	)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no document found with id: %s", id)
	}
	return nil
}

// Delete removes a document by id
func (s *MongoDocumentStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no document found with id: %s", id)
	}
	return nil
}

func buildFilter(filters []repository.Filter) bson.M {
	out := bson.M{}
	for _, f := range filters {
		switch f.Op {
		case repository.OpExists:
			out[f.Field] = bson.M{"$exists": true, "$ne": ""}
		default:
			out[f.Field] = f.Value
		}
	}
	return out
}

// toRecord splits the distinguished _id off the raw document
func toRecord(doc bson.M) rawdoc.Record {
	rec := rawdoc.Record{Data: rawdoc.Doc{}}
	for k, v := range doc {
		if k == "_id" {
			rec.ID = idString(v)
			continue
		}
		rec.Data[k] = v
	}
	return rec
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	}
	return fmt.Sprintf("%v", v)
}
