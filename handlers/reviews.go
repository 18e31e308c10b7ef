package handlers

import (
	"context"
	"net/http"

	"github.com/kevinaaaquil/bookheaven/backend/models"
)

type ReviewStore interface {
	InsertReview(ctx context.Context, review models.Review) (string, error)
	ReviewsByBook(ctx context.Context, bookID string) ([]models.Review, error)
}

type ReviewsHandler struct {
	DB ReviewStore
}

// Create stores the body as-is; reviews have no required fields.
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := decodeJSON(r, &review); err != nil || review == nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.DB.InsertReview(r.Context(), review)
	if err != nil {
		internalError(w, "create review", err)
		return
	}
	writeJSON(w, http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID := r.URL.Query().Get("bookId")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "bookId is required")
		return
	}
	reviews, err := h.DB.ReviewsByBook(r.Context(), bookID)
	if err != nil {
		internalError(w, "list reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
