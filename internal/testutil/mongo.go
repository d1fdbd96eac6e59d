package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultMongoURI is used when PERSONA_TEST_MONGO_URI is not set.
const DefaultMongoURI = "mongodb://localhost:27017"

// TestContext returns a context with a timeout suitable for a single test.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestClient connects to the test MongoDB server and skips the test
// when none is reachable. The client is disconnected on cleanup.
func SetupTestClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("PERSONA_TEST_MONGO_URI")
	if uri == "" {
		uri = DefaultMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Skipf("mongo not available at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo not available at %s: %v", uri, err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client
}

// SetupTestDB returns a fresh, uniquely named database that is dropped
// when the test finishes.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	client := SetupTestClient(t)
	db := client.Database("persona_test_" + primitive.NewObjectID().Hex())

	t.Cleanup(func() {
		ctx, cancel := TestContext()
		defer cancel()
		_ = db.Drop(ctx)
	})
	return db
}
