package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kevinaaaquil/bookheaven/backend/config"
	"github.com/kevinaaaquil/bookheaven/backend/handlers"
	"github.com/kevinaaaquil/bookheaven/backend/service"
	"github.com/kevinaaaquil/bookheaven/backend/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db, err := store.NewMongoDB(connectCtx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatal("mongodb: ", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()
	db.NumericRatingSort = cfg.NumericRatingSort()
	log.Printf("rating sort: %s", cfg.RatingSort)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = db.EnsureIndexes(indexCtx)
	cancel()
	if err != nil {
		log.Fatal("mongodb indexes: ", err)
	}

	var covers handlers.CoverUploader
	if cfg.S3Bucket != "" {
		s3Service, err := service.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.CoverBaseURL)
		if err != nil {
			log.Fatal("s3: ", err)
		}
		covers = s3Service
	} else {
		log.Println("warning: AWS_S3_BUCKET not set; cover uploads will fail")
	}

	router := handlers.NewRouter(db, covers, handlers.RouterConfig{
		AllowedOrigins: cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		MaxUploadBytes: cfg.MaxUploadMB * 1024 * 1024,
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
