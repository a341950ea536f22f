package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gallery describes a generated-image record. No endpoint or repository
// reads or writes this collection yet; the type is kept so documents
// written by earlier tooling keep a declared shape.
type Gallery struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	URL       string             `bson:"url" json:"url"`
	PublicID  string             `bson:"public_id" json:"public_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
