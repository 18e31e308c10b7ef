package store

import (
	"context"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

// InsertReview stores the review exactly as sent, minus any client _id.
func (db *DB) InsertReview(ctx context.Context, review models.Review) (string, error) {
	res, err := db.Reviews().InsertOne(ctx, models.StripID(review))
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

// ReviewsByBook returns the reviews for a book in whatever order the store
// yields them.
func (db *DB) ReviewsByBook(ctx context.Context, bookID string) ([]models.Review, error) {
	cur, err := db.Reviews().Find(ctx, bson.M{"bookId": bookID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	reviews := make([]models.Review, 0)
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
