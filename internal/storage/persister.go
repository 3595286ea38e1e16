// Package storage persists rendered pages to an object store under
// deterministic slug-derived keys.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/NikitaForGit/lambda-generate-content/internal/domain"
	"github.com/NikitaForGit/lambda-generate-content/internal/page"
)

const (
	contentType = "text/html"
	// Pages are static once written; let CDNs and browsers cache a day.
	cacheControl = "public, max-age=86400"
)

// ObjectStore writes a named HTML blob.
type ObjectStore interface {
	Put(ctx context.Context, key, body string) error
}

// S3Store writes objects to a fixed S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store creates an ObjectStore backed by an S3 bucket.
func NewS3Store(client *s3.Client, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Put uploads an HTML document with the fixed content type and cache policy.
func (s *S3Store) Put(ctx context.Context, key, body string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader([]byte(body)),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("failed to write s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// Persister renders articles into pages and stores them.
type Persister struct {
	store ObjectStore
}

// NewPersister creates a Persister on top of an object store.
func NewPersister(store ObjectStore) *Persister {
	return &Persister{store: store}
}

// Persist renders the full page for an article and writes it under the
// pair's deterministic key. Returns the object key.
func (p *Persister) Persist(ctx context.Context, topic, category string, article domain.Article) (string, error) {
	html, err := page.Render(topic, category, article.CategoryName, article.Content, article.MetaDescription)
	if err != nil {
		return "", err
	}

	key := ObjectKey(topic, category)
	if err := p.store.Put(ctx, key, html); err != nil {
		return "", err
	}
	return key, nil
}
