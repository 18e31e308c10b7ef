package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kevinaaaquil/bookheaven/backend/middleware"
)

// Store is everything the routes read and write.
type Store interface {
	BookStore
	UserStore
	CommentStore
	ReviewStore
	Pinger
}

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration // 0 leaves store calls without a deadline
	MaxUploadBytes int64
}

// NewRouter wires every endpoint. covers may be nil, in which case
// POST /covers answers 503.
func NewRouter(db Store, covers CoverUploader, cfg RouterConfig) http.Handler {
	books := &BooksHandler{DB: db}
	users := &UsersHandler{DB: db}
	comments := &CommentsHandler{DB: db}
	reviews := &ReviewsHandler{DB: db}
	coversHandler := &CoversHandler{S3: covers, MaxBytes: cfg.MaxUploadBytes}
	health := &HealthHandler{DB: db}

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}

	r.Get("/", Welcome)
	r.Get("/health", health.Status)

	r.Post("/users", users.Register)

	r.Get("/books", books.List)
	r.Post("/books", books.Create)
	r.Get("/books/{id}", books.Get)
	r.Patch("/books/{id}", books.Update)
	r.Delete("/books/{id}", books.Delete)
	r.Get("/all-books", books.ListAll)
	r.Get("/all-books/{id}", books.Get)
	r.Get("/top-books", books.Top)

	r.Post("/comments", comments.Create)
	r.Get("/comments", comments.List)

	r.Post("/reviews", reviews.Create)
	r.Get("/reviews", reviews.List)

	r.Post("/covers", coversHandler.Upload)
	return r
}
