// Package bucket uploads generated artifacts (project previews, proof
// documents) to object storage and hands back public URLs.
package bucket

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/arteva/arteva-backend/internal/logger"
)

type Category string

const (
	CategoryPreview Category = "preview"
	CategoryProof   Category = "proof"
)

type Service interface {
	Upload(ctx context.Context, category Category, key string, contentType string, body io.Reader) error
	Delete(ctx context.Context, category Category, key string) error
	PublicURL(category Category, key string) string
}

type bucketConfig struct {
	name      string
	cdnDomain string
}

type service struct {
	log           *logger.Logger
	storageClient *storage.Client
	preview       bucketConfig
	proof         bucketConfig
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	opts := []option.ClientOption{}
	if creds == "" {
		return opts
	}
	if strings.HasPrefix(creds, "{") {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	return opts
}

func NewService(log *logger.Logger) (Service, error) {
	serviceLog := log.With("service", "BucketService")

	previewBucket := os.Getenv("PREVIEW_GCS_BUCKET_NAME")
	proofBucket := os.Getenv("PROOF_GCS_BUCKET_NAME")
	if previewBucket == "" {
		return nil, fmt.Errorf("missing env var PREVIEW_GCS_BUCKET_NAME")
	}
	if proofBucket == "" {
		return nil, fmt.Errorf("missing env var PROOF_GCS_BUCKET_NAME")
	}

	opts := clientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &service{
		log:           serviceLog,
		storageClient: client,
		preview:       bucketConfig{name: previewBucket, cdnDomain: os.Getenv("PREVIEW_CDN_DOMAIN")},
		proof:         bucketConfig{name: proofBucket, cdnDomain: os.Getenv("PROOF_CDN_DOMAIN")},
	}, nil
}

func (s *service) config(category Category) bucketConfig {
	if category == CategoryProof {
		return s.proof
	}
	return s.preview
}

func (s *service) Upload(ctx context.Context, category Category, key string, contentType string, body io.Reader) error {
	cfg := s.config(category)
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	w := s.storageClient.Bucket(cfg.name).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s/%s: %w", cfg.name, key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s/%s: %w", cfg.name, key, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, category Category, key string) error {
	cfg := s.config(category)
	if err := s.storageClient.Bucket(cfg.name).Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", cfg.name, key, err)
	}
	return nil
}

func (s *service) PublicURL(category Category, key string) string {
	cfg := s.config(category)
	if cfg.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimSuffix(cfg.cdnDomain, "/"), key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", cfg.name, key)
}
