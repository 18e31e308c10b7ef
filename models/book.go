package models

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownSubmitter fills userName/userEmail when a book is created without them.
const UnknownSubmitter = "Unknown"

// ISOLayout matches JavaScript's Date.prototype.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// BookPatchFields are the only fields PATCH /books/{id} replaces besides dateAdded.
var BookPatchFields = []string{"title", "author", "genre", "rating", "summary", "coverImage"}

// Book is a stored catalog entry as read back. Books are written from the
// client's JSON as-is, so every field may hold any type; rating is usually
// text and is coerced to a number only when ranking. Fields outside the known
// set are kept in Extra and written back out.
type Book struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title      any                `bson:"title,omitempty" json:"title,omitempty"`
	Author     any                `bson:"author,omitempty" json:"author,omitempty"`
	Genre      any                `bson:"genre,omitempty" json:"genre,omitempty"`
	Rating     any                `bson:"rating,omitempty" json:"rating,omitempty"`
	Summary    any                `bson:"summary,omitempty" json:"summary,omitempty"`
	CoverImage any                `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	UserEmail  any                `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName   any                `bson:"userName,omitempty" json:"userName,omitempty"`
	DateAdded  any                `bson:"dateAdded,omitempty" json:"dateAdded,omitempty"`
	Extra      bson.M             `bson:",inline" json:"-"`
}

func (b Book) MarshalJSON() ([]byte, error) {
	return marshalFlat(b.Extra, bson.D{
		{Key: "_id", Value: b.ID},
		{Key: "title", Value: b.Title},
		{Key: "author", Value: b.Author},
		{Key: "genre", Value: b.Genre},
		{Key: "rating", Value: b.Rating},
		{Key: "summary", Value: b.Summary},
		{Key: "coverImage", Value: b.CoverImage},
		{Key: "userEmail", Value: b.UserEmail},
		{Key: "userName", Value: b.UserName},
		{Key: "dateAdded", Value: b.DateAdded},
	})
}

// NormalizeDateAdded reformats raw as an ISO-8601 UTC timestamp. Strings are
// parsed in any common layout, numbers are epoch milliseconds. Anything else,
// including an empty or unparsable string, yields now.
func NormalizeDateAdded(raw any, now time.Time) string {
	switch v := raw.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
				return t.UTC().Format(ISOLayout)
			}
		}
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return time.UnixMilli(int64(v)).UTC().Format(ISOLayout)
		}
	case int64:
		return time.UnixMilli(v).UTC().Format(ISOLayout)
	case time.Time:
		return v.UTC().Format(ISOLayout)
	}
	return now.UTC().Format(ISOLayout)
}

// PrepareBook applies the create-time defaults to a client payload: submitter
// sentinels for falsy values and a normalized dateAdded. Every other field is
// left as sent; the identifier is left for the store to generate.
func PrepareBook(doc Document, now time.Time) Document {
	StripID(doc)
	for _, k := range []string{"userName", "userEmail"} {
		if Falsy(doc[k]) {
			doc[k] = UnknownSubmitter
		}
	}
	doc["dateAdded"] = NormalizeDateAdded(doc["dateAdded"], now)
	return doc
}
