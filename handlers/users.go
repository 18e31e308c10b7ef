package handlers

import (
	"context"
	"net/http"

	"github.com/kevinaaaquil/bookheaven/backend/models"
)

type UserStore interface {
	RegisterUser(ctx context.Context, email string, profile models.User) (id string, created bool, err error)
}

type UsersHandler struct {
	DB UserStore
}

// Register serves POST /users. A known email is a soft no-op: 200 with a
// message and nothing written.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var profile models.User
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	email, _ := profile["email"].(string)
	if err := validate.Struct(models.UserRegistration{Email: email}); err != nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	id, created, err := h.DB.RegisterUser(r.Context(), email, profile)
	if err != nil {
		internalError(w, "register user", err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: models.UserExistsMessage})
		return
	}
	writeJSON(w, http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
}
