package store

import (
	"context"
	"time"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ratingValueField holds the per-document numeric rating while a pipeline runs.
const ratingValueField = "ratingValue"

// numericRatingStage adds ratingValue, the rating converted to a double.
// Values that do not convert (missing, empty, "n/a") become null and sort last.
func numericRatingStage() bson.D {
	return bson.D{{Key: "$addFields", Value: bson.D{{Key: ratingValueField, Value: bson.D{
		{Key: "$convert", Value: bson.D{
			{Key: "input", Value: "$rating"},
			{Key: "to", Value: "double"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}},
	}}}}}
}

// RankByRatingPipeline sorts books by numeric rating, highest first, keeping at
// most limit documents (0 keeps all). The helper field is dropped before return.
func RankByRatingPipeline(limit int64) mongo.Pipeline {
	p := mongo.Pipeline{
		numericRatingStage(),
		{{Key: "$sort", Value: bson.D{{Key: ratingValueField, Value: -1}}}},
	}
	if limit > 0 {
		p = append(p, bson.D{{Key: "$limit", Value: limit}})
	}
	return append(p, bson.D{{Key: "$project", Value: bson.D{{Key: ratingValueField, Value: 0}}}})
}

// ListBooks returns books by rating, highest first, at most limit of them when
// limit > 0. With NumericRatingSort unset the stored value is sorted as-is, so
// text ratings compare lexicographically.
func (db *DB) ListBooks(ctx context.Context, limit int64) ([]models.Book, error) {
	if db.NumericRatingSort {
		return db.aggregateBooks(ctx, RankByRatingPipeline(limit))
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := db.Books().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := make([]models.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// TopBooks returns the n best books by numeric rating regardless of the
// configured listing sort.
func (db *DB) TopBooks(ctx context.Context, n int64) ([]models.Book, error) {
	return db.aggregateBooks(ctx, RankByRatingPipeline(n))
}

func (db *DB) aggregateBooks(ctx context.Context, pipeline mongo.Pipeline) ([]models.Book, error) {
	cur, err := db.Books().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := make([]models.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// BookByID returns nil, nil when no book has the identifier.
func (db *DB) BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	err := db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// InsertBook applies the create-time defaults to the client payload and
// stores it with every other field as sent.
func (db *DB) InsertBook(ctx context.Context, doc models.Document) (string, error) {
	res, err := db.Books().InsertOne(ctx, models.PrepareBook(doc, time.Now()))
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

// BookPatchSet builds the $set document for a partial update. Only the
// patchable fields present in patch are copied, whatever their type.
// dateAdded is always written: the given value untouched, or now when absent.
func BookPatchSet(patch models.Document, now time.Time) bson.M {
	set := bson.M{}
	for _, k := range models.BookPatchFields {
		if v, ok := patch[k]; ok {
			set[k] = v
		}
	}
	if v := patch["dateAdded"]; !models.Falsy(v) {
		set["dateAdded"] = v
	} else {
		set["dateAdded"] = now.UTC().Format(models.ISOLayout)
	}
	return set
}

// UpdateBook replaces the patched fields and returns how many documents the
// store reports as modified. An identical patch modifies nothing.
func (db *DB) UpdateBook(ctx context.Context, id primitive.ObjectID, patch models.Document) (int64, error) {
	res, err := db.Books().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": BookPatchSet(patch, time.Now())})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// DeleteBook removes a book by ID. Comments and reviews pointing at it stay.
func (db *DB) DeleteBook(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := db.Books().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
