package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter is the slice of the S3 API cover uploads need.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Service struct {
	client  ObjectPutter
	bucket  string
	region  string
	baseURL string
}

func NewS3Service(ctx context.Context, bucket, region, accessKeyID, secretAccessKey, baseURL string) (*S3Service, error) {
	if bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is required")
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return NewS3ServiceWithClient(s3.NewFromConfig(cfg), bucket, region, baseURL), nil
}

// NewS3ServiceWithClient wraps an existing client, e.g. one pointed at a local S3-compatible endpoint.
func NewS3ServiceWithClient(client ObjectPutter, bucket, region, baseURL string) *S3Service {
	return &S3Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload stores the object under prefix with a random name that keeps the
// original extension. Returns the object key.
func (s *S3Service) Upload(ctx context.Context, prefix, originalFilename string, body io.Reader, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	key := prefix + uuid.New().String() + ext
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// PublicURL returns the address clients use to fetch key: under the
// configured base URL when set, otherwise the bucket's virtual-hosted URL.
func (s *S3Service) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.baseURL != "" {
		return s.baseURL + "/" + escaped
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}
