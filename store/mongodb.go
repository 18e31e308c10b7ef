package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when an identifier is not a 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid identifier")

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
	// NumericRatingSort ranks book listings by the rating coerced to a number.
	NumericRatingSort bool
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	// Free-form documents keep nested objects as maps so they encode back to JSON objects.
	opts := options.Client().ApplyURI(uri).SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Println("Connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *DB) Books() *mongo.Collection {
	return db.Database.Collection("books")
}

func (db *DB) Users() *mongo.Collection {
	return db.Database.Collection("users")
}

func (db *DB) Comments() *mongo.Collection {
	return db.Database.Collection("comments")
}

func (db *DB) Reviews() *mongo.Collection {
	return db.Database.Collection("reviews")
}

// EnsureIndexes creates the unique email index that backs user registration
// and the bookId indexes used by the comment and review listings. The email
// index covers string emails only. If existing users already share an email
// the index cannot be built; that is logged and startup continues, with the
// conditional upsert in RegisterUser still keeping new emails unique.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetPartialFilterExpression(
			bson.D{{Key: "email", Value: bson.D{{Key: "$type", Value: "string"}}}},
		),
	})
	if mongo.IsDuplicateKeyError(err) {
		log.Printf("mongodb: users email index not built, duplicate emails exist: %v", err)
	} else if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	if _, err := db.Comments().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookId", Value: 1}, {Key: "createdAt", Value: 1}},
	}); err != nil {
		return fmt.Errorf("comments bookId index: %w", err)
	}
	if _, err := db.Reviews().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookId", Value: 1}},
	}); err != nil {
		return fmt.Errorf("reviews bookId index: %w", err)
	}
	return nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}

// ParseID converts the hex string form of an identifier.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
