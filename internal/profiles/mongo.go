// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/matchbox/internal/matching"
)

// MongoConfig selects the MongoDB collection backing a MongoStore.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string

	// Timeout bounds connect and index creation.
	Timeout time.Duration
}

// MongoStore reads and writes profiles in a MongoDB collection.
//
// Documents are keyed by the profile "id" field; the server-generated _id
// ObjectID gives insertion order.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	ownsClient bool
}

// OpenMongoStore connects to MongoDB and ensures the collection indexes.
func OpenMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	s := &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		ownsClient: true,
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// NewMongoStore uses an existing collection. Close does not disconnect its client.
func NewMongoStore(ctx context.Context, collection *mongo.Collection) (*MongoStore, error) {
	s := &MongoStore{client: collection.Database().Client(), collection: collection}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Default index names for the unique keys; duplicate key errors name the
// index that was violated.
const (
	mongoIDIndex    = "id_1"
	mongoEmailIndex = "email_1"
)

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "interests", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create profile indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (matching.UserProfile, error) {
	var p matching.UserProfile
	err := s.collection.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return p, ErrNotFound
	}
	return p, err
}

// Get returns the profile with the given ID.
func (s *MongoStore) Get(ctx context.Context, id string) (matching.UserProfile, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

// GetByEmail returns the profile registered with email.
func (s *MongoStore) GetByEmail(ctx context.Context, email string) (matching.UserProfile, error) {
	if email == "" {
		return matching.UserProfile{}, ErrNotFound
	}
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) find(ctx context.Context, filter bson.M) ([]matching.UserProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []matching.UserProfile{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all profiles in insertion order.
func (s *MongoStore) List(ctx context.Context) ([]matching.UserProfile, error) {
	return s.find(ctx, bson.M{})
}

// ListByInterests returns profiles sharing at least one of interests, in
// insertion order.
func (s *MongoStore) ListByInterests(ctx context.Context, interests []string) ([]matching.UserProfile, error) {
	if len(interests) == 0 {
		return []matching.UserProfile{}, nil
	}
	return s.find(ctx, bson.M{"interests": bson.M{"$in": interests}})
}

// Put inserts or replaces a profile. A replaced document keeps its _id.
//
// Two upserts racing to insert the same new id collide on a unique index;
// the loser retries once and replaces the winner's document.
func (s *MongoStore) Put(ctx context.Context, profile matching.UserProfile) error {
	filter := bson.M{"id": profile.ID}
	opts := options.Replace().SetUpsert(true)

	for attempt := 0; ; attempt++ {
		_, err := s.collection.ReplaceOne(ctx, filter, profile, opts)
		if err == nil {
			return nil
		}
		if attempt == 0 && s.racedOnID(ctx, err, profile) {
			continue
		}
		if duplicateOn(err, mongoEmailIndex) {
			return ErrDuplicateEmail
		}
		return err
	}
}

// racedOnID reports whether err came from a concurrent insert of the same
// profile id rather than from another profile owning the email.
func (s *MongoStore) racedOnID(ctx context.Context, err error, profile matching.UserProfile) bool {
	if duplicateOn(err, mongoIDIndex) {
		return true
	}
	if !duplicateOn(err, mongoEmailIndex) {
		return false
	}
	owner, lookupErr := s.GetByEmail(ctx, profile.Email)
	return lookupErr == nil && owner.ID == profile.ID
}

// duplicateOn reports whether err is a duplicate key violation of index.
func duplicateOn(err error, index string) bool {
	return mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), "index: "+index+" ")
}

// Ping checks connectivity to the primary.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client if the store created it.
func (s *MongoStore) Close() error {
	if !s.ownsClient {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
