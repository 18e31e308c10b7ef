package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rating sort modes for the book listings.
const (
	RatingSortNumeric = "numeric" // coerce rating to a number before sorting
	RatingSortStored  = "stored"  // sort on the stored value as-is (legacy, "9" ranks above "10")
)

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	RatingSort     string
	RequestTimeout time.Duration // 0 disables the per-request deadline
	S3Bucket       string
	S3Region       string
	S3AccessKeyID  string
	S3SecretKey    string
	CoverBaseURL   string // public prefix for uploaded covers; empty uses the bucket URL
	MaxUploadMB    int64
	CORSOrigins    []string // empty allows every origin
}

func Load() (*Config, error) {
	ratingSort := strings.ToLower(strings.TrimSpace(getEnv("RATING_SORT", RatingSortNumeric)))
	if ratingSort != RatingSortNumeric && ratingSort != RatingSortStored {
		return nil, fmt.Errorf("RATING_SORT must be %q or %q, got %q", RatingSortNumeric, RatingSortStored, ratingSort)
	}
	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil || timeout < 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be a non-negative duration: %q", os.Getenv("REQUEST_TIMEOUT"))
	}
	maxMB := int64(5)
	if v := getEnv("MAX_UPLOAD_MB", "5"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxMB = n
		}
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("MONGODB_DB", "bookHeaven"),
		RatingSort:     ratingSort,
		RequestTimeout: timeout,
		S3Bucket:       getEnv("AWS_S3_BUCKET", ""),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),
		S3AccessKeyID:  getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CoverBaseURL:   strings.TrimRight(getEnv("COVER_BASE_URL", ""), "/"),
		MaxUploadMB:    maxMB,
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "")),
	}, nil
}

// NumericRatingSort reports whether listings should rank by the coerced numeric rating.
func (c *Config) NumericRatingSort() bool {
	return c.RatingSort != RatingSortStored
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
