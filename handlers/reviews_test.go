package handlers

import (
	"net/http"
	"testing"

	"github.com/kevinaaaquil/bookheaven/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews(t *testing.T) {
	t.Run("stored as sent and filtered by book", func(t *testing.T) {
		st := newFakeStore()
		h := newTestRouter(st)

		w := do(t, h, http.MethodPost, "/reviews", `{"_id":"client-id","bookId":"b1","stars":4,"text":"solid"}`)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[models.InsertResult](t, w)
		assert.True(t, res.Acknowledged)
		assert.NotEqual(t, "client-id", res.InsertedID)

		do(t, h, http.MethodPost, "/reviews", `{"bookId":"b2","text":"other"}`)

		w = do(t, h, http.MethodGet, "/reviews?bookId=b1", "")
		require.Equal(t, http.StatusOK, w.Code)
		reviews := decode[[]map[string]any](t, w)
		require.Len(t, reviews, 1)
		assert.Equal(t, "solid", reviews[0]["text"])
		assert.Equal(t, float64(4), reviews[0]["stars"])
		assert.Equal(t, res.InsertedID, reviews[0]["_id"])
	})

	t.Run("non-object body is rejected", func(t *testing.T) {
		h := newTestRouter(newFakeStore())
		for _, body := range []string{`null`, `"text"`, `{`} {
			w := do(t, h, http.MethodPost, "/reviews", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("bookId query is required", func(t *testing.T) {
		w := do(t, newTestRouter(newFakeStore()), http.MethodGet, "/reviews", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		st := newFakeStore()
		st.failWith = errStore
		w := do(t, newTestRouter(st), http.MethodPost, "/reviews", `{"bookId":"b1"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
