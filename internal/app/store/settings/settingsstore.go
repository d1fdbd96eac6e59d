// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/persona/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the Mongo collection holding persona settings.
const Collection = "persona_settings"

// Store provides access to the persona_settings collection.
// One document per setting key.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// EnsureIndexes creates the unique index on key.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_key"),
	})
	if err != nil {
		return fmt.Errorf("create %s key index: %w", Collection, err)
	}
	return nil
}

// All returns every stored setting as a key/value map.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]string)
	for cur.Next(ctx) {
		var doc models.Setting
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.Key] = doc.Value
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save upserts the value for key.
func (s *Store) Save(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	filter := bson.M{"key": key}
	update := bson.M{
		"$set": bson.M{
			"key":        key,
			"value":      value,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
