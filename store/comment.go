package store

import (
	"context"
	"time"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertComment stores the comment as sent with a server createdAt.
func (db *DB) InsertComment(ctx context.Context, doc models.Document) (string, error) {
	res, err := db.Comments().InsertOne(ctx, models.PrepareComment(doc, time.Now()))
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

// CommentsByBook returns a book's comments oldest first. _id breaks ties
// between comments created in the same millisecond.
func (db *DB) CommentsByBook(ctx context.Context, bookID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := db.Comments().Find(ctx, bson.M{"bookId": bookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	comments := make([]models.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
