package store

import (
	"context"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RegisterUser inserts the profile unless a user with the same email exists.
// The lookup and insert are one conditional upsert, and the unique email index
// turns a lost race into a duplicate-key error, reported here as "exists".
// created is false when nothing was written.
func (db *DB) RegisterUser(ctx context.Context, email string, profile models.User) (id string, created bool, err error) {
	onInsert := bson.M{}
	for k, v := range profile {
		if k == "_id" || k == "email" {
			continue
		}
		onInsert[k] = v
	}
	update := bson.M{}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	} else {
		// An update document needs at least one operator; rewriting the
		// filtered email is a no-op for an existing user.
		update["$set"] = bson.M{"email": email}
	}
	res, err := db.Users().UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if res.UpsertedID == nil {
		return "", false, nil
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), true, nil
	}
	return "", true, nil
}
