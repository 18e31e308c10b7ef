package handlers

import (
	"context"
	"net/http"

	"github.com/kevinaaaquil/bookheaven/backend/models"
)

type CommentStore interface {
	InsertComment(ctx context.Context, doc models.Document) (string, error)
	CommentsByBook(ctx context.Context, bookID string) ([]models.Comment, error)
}

type CommentsHandler struct {
	DB CommentStore
}

// Create stores the comment as sent once bookId and comment are present.
func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := decodeJSON(r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(models.CommentRequired{BookID: doc["bookId"], Comment: doc["comment"]}); err != nil {
		writeError(w, http.StatusBadRequest, "bookId and comment are required")
		return
	}
	id, err := h.DB.InsertComment(r.Context(), doc)
	if err != nil {
		internalError(w, "create comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, models.InsertResult{Acknowledged: true, InsertedID: id})
}
// List serves GET /comments?bookId=, oldest comment first.
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID := r.URL.Query().Get("bookId")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "bookId is required")
		return
	}
	comments, err := h.DB.CommentsByBook(r.Context(), bookID)
	if err != nil {
		internalError(w, "list comments", err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
