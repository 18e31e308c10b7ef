package handlers

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"github.com/kevinaaaquil/bookheaven/backend/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("connection refused")

// fakeStore is an in-memory Store. Documents go through BSON on the way out
// so reads see what the database would return. Book listings return books in
// insertion order; ranking is the store's job and is covered by store tests.
type fakeStore struct {
	mu sync.Mutex

	books     []models.Document
	users     map[string]models.User
	comments  []models.Document
	reviews   []models.Review
	lastLimit int64
	lastTopN  int64
	failWith  error
	pingErr   error
	clock     time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: map[string]models.User{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func decodeDocument[T any](doc models.Document) T {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func (f *fakeStore) ListBooks(ctx context.Context, limit int64) ([]models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastLimit = limit
	out := make([]models.Book, 0, len(f.books))
	for _, doc := range f.books {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		out = append(out, decodeDocument[models.Book](doc))
	}
	return out, nil
}

func (f *fakeStore) TopBooks(ctx context.Context, n int64) ([]models.Book, error) {
	f.mu.Lock()
	f.lastTopN = n
	f.mu.Unlock()
	return f.ListBooks(ctx, n)
}

func (f *fakeStore) BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, doc := range f.books {
		if doc["_id"] == id {
			b := decodeDocument[models.Book](doc)
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertBook(ctx context.Context, doc models.Document) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", f.failWith
	}
	doc = models.PrepareBook(doc, f.tick())
	id := primitive.NewObjectID()
	doc["_id"] = id
	f.books = append(f.books, doc)
	return id.Hex(), nil
}

// UpdateBook applies the same $set the real store sends and reports a
// modification only when a stored value changed.
func (f *fakeStore) UpdateBook(ctx context.Context, id primitive.ObjectID, patch models.Document) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	for _, doc := range f.books {
		if doc["_id"] != id {
			continue
		}
		var modified int64
		for k, v := range store.BookPatchSet(patch, f.tick()) {
			if old, ok := doc[k]; !ok || !reflect.DeepEqual(old, v) {
				doc[k] = v
				modified = 1
			}
		}
		return modified, nil
	}
	return 0, nil
}

func (f *fakeStore) DeleteBook(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	for i, doc := range f.books {
		if doc["_id"] == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) RegisterUser(ctx context.Context, email string, profile models.User) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", false, f.failWith
	}
	if _, ok := f.users[email]; ok {
		return "", false, nil
	}
	f.users[email] = profile
	return primitive.NewObjectID().Hex(), true, nil
}

func (f *fakeStore) InsertComment(ctx context.Context, doc models.Document) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", f.failWith
	}
	doc = models.PrepareComment(doc, f.tick())
	id := primitive.NewObjectID()
	doc["_id"] = id
	f.comments = append(f.comments, doc)
	return id.Hex(), nil
}

func (f *fakeStore) CommentsByBook(ctx context.Context, bookID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.Comment, 0)
	for _, doc := range f.comments {
		if doc["bookId"] == bookID {
			out = append(out, decodeDocument[models.Comment](doc))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) InsertReview(ctx context.Context, review models.Review) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", f.failWith
	}
	id := primitive.NewObjectID()
	review = models.StripID(review)
	review["_id"] = id
	f.reviews = append(f.reviews, review)
	return id.Hex(), nil
}

func (f *fakeStore) ReviewsByBook(ctx context.Context, bookID string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.Review, 0)
	for _, r := range f.reviews {
		if r["bookId"] == bookID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}
