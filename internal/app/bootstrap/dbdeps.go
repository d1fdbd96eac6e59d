// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Both Mongo fields are nil when the Mongo settings source is disabled.
type DBDeps struct {
	PersonaMongoClient   *mongo.Client
	PersonaMongoDatabase *mongo.Database

	// StoredSettings is the persona_settings collection as read at connect time.
	StoredSettings map[string]string
}
