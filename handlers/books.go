package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaaaquil/bookheaven/backend/models"
	"github.com/kevinaaaquil/bookheaven/backend/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing sizes.
const (
	HomeBooksLimit = 6
	TopBooksLimit  = 3
)

type BookStore interface {
	ListBooks(ctx context.Context, limit int64) ([]models.Book, error)
	TopBooks(ctx context.Context, n int64) ([]models.Book, error)
	BookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	InsertBook(ctx context.Context, doc models.Document) (string, error)
	UpdateBook(ctx context.Context, id primitive.ObjectID, patch models.Document) (int64, error)
	DeleteBook(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type BooksHandler struct {
	DB BookStore
}

// List serves GET /books: the six highest rated books.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, HomeBooksLimit)
}

// ListAll serves GET /all-books: the whole catalog by rating.
func (h *BooksHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, 0)
}

func (h *BooksHandler) list(w http.ResponseWriter, r *http.Request, limit int64) {
	books, err := h.DB.ListBooks(r.Context(), limit)
	if err != nil {
		internalError(w, "list books", err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Top serves GET /top-books, ranked by numeric rating.
func (h *BooksHandler) Top(w http.ResponseWriter, r *http.Request) {
	books, err := h.DB.TopBooks(r.Context(), TopBooksLimit)
	if err != nil {
		internalError(w, "top books", err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Get answers 200 with null when the book does not exist.
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	book, err := h.DB.BookByID(r.Context(), id)
	if err != nil {
		internalError(w, "get book", err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Create stores the body as sent, fields of any type included, after filling
// in the submitter and dateAdded defaults.
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book models.Document
	if err := decodeJSON(r, &book); err != nil || book == nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.DB.InsertBook(r.Context(), book)
	if err != nil {
		internalError(w, "create book", err)
		return
	}
	writeJSON(w, http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
}

// Update reports 404 whenever the store modified nothing, which includes a
// patch identical to the stored values.
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	var patch models.Document
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	modified, err := h.DB.UpdateBook(r.Context(), id, patch)
	if err != nil {
		internalError(w, "update book", err)
		return
	}
	if modified == 0 {
		writeJSON(w, http.StatusNotFound, models.UpdateResponse{Success: false, Message: "Book not found or no changes made"})
		return
	}
	writeJSON(w, http.StatusOK, models.UpdateResponse{Success: true, Message: "Book updated successfully"})
}

// Delete succeeds for unknown identifiers with deletedCount 0.
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	n, err := h.DB.DeleteBook(r.Context(), id)
	if err != nil {
		internalError(w, "delete book", err)
		return
	}
	writeJSON(w, http.StatusOK, models.DeleteResult{Acknowledged: true, DeletedCount: n})
}

func bookID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := store.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return primitive.NilObjectID, false
	}
	return id, true
}
