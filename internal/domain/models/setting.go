// internal/domain/models/setting.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is one stored key/value pair in the persona_settings collection.
// Keys are unique; the value is served verbatim.
type Setting struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
