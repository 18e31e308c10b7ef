package models

import (
	"encoding/json"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a free-form record stored as sent. Client payloads carry
// arbitrary fields of arbitrary types, so writes are not bound to a struct.
type Document = bson.M

// Review is a free-form review; only bookId is read by the server.
type Review = Document

// User is a free-form profile keyed by email.
type User = Document

// StripID removes a client-supplied _id so the store generates one.
func StripID(doc Document) Document {
	delete(doc, "_id")
	return doc
}

// Falsy reports whether v is absent, null, false, zero or the empty string.
// Whitespace-only strings are not falsy.
func Falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	case int:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	}
	return false
}

// marshalFlat writes extra and the set known fields as one JSON object.
func marshalFlat(extra Document, known bson.D) ([]byte, error) {
	doc := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		doc[k] = v
	}
	for _, e := range known {
		if e.Value != nil {
			doc[e.Key] = e.Value
		}
	}
	return json.Marshal(doc)
}
