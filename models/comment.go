package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to a book through BookID, a weak reference that is never
// checked against the books collection. Fields hold whatever the client sent.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookID    any                `bson:"bookId,omitempty" json:"bookId,omitempty"`
	UserName  any                `bson:"userName,omitempty" json:"userName,omitempty"`
	UserPhoto any                `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Comment   any                `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Extra     bson.M             `bson:",inline" json:"-"`
}

func (c Comment) MarshalJSON() ([]byte, error) {
	return marshalFlat(c.Extra, bson.D{
		{Key: "_id", Value: c.ID},
		{Key: "bookId", Value: c.BookID},
		{Key: "userName", Value: c.UserName},
		{Key: "userPhoto", Value: c.UserPhoto},
		{Key: "comment", Value: c.Comment},
		{Key: "createdAt", Value: c.CreatedAt},
	})
}

// CommentRequired holds the fields a new comment must carry. Any non-empty
// value of any type counts as present.
type CommentRequired struct {
	BookID  any `validate:"required"`
	Comment any `validate:"required"`
}

// PrepareComment stamps createdAt with the server clock, which is what
// comment listings are ordered by.
func PrepareComment(doc Document, now time.Time) Document {
	StripID(doc)
	doc["createdAt"] = now.UTC()
	return doc
}
