package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"m2_studio/internal/infrastructure/database"
	"m2_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	defaultBucket     = "m2-studio-files"
	defaultPresignTTL = 24 * time.Hour
)

// S3API is the subset of *s3.Client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage stores order files in a private bucket.
//
// Upload returns a stable object URL ("{base}/{key}") that is saved on the
// order. DownloadURL turns such a URL back into a presigned link. Links
// that do not belong to the bucket (client-pasted Drive links) pass
// through unchanged.
type S3Storage struct {
	client  S3API
	presign func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
	bucket  string
	baseURL string
	ttl     time.Duration
}

var _ interfaces.IObjectStorage = (*S3Storage)(nil)

// ConnectS3 builds the store from environment variables: S3_BUCKET,
// S3_ENDPOINT (MinIO or LocalStack, switches to path-style addressing) and
// S3_PUBLIC_URL (base used for stored object URLs).
func ConnectS3(ctx context.Context) *S3Storage {
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("[storage] failed to create aws config: %v", err)
	}
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := getenvDefault("S3_BUCKET", defaultBucket)
	base := os.Getenv("S3_PUBLIC_URL")
	if base == "" {
		if endpoint != "" {
			base = strings.TrimRight(endpoint, "/") + "/" + bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
		}
	}
	return NewS3Storage(client, s3.NewPresignClient(client), bucket, base)
}

func NewS3Storage(client S3API, presigner *s3.PresignClient, bucket, baseURL string) *S3Storage {
	st := &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     defaultPresignTTL,
	}
	if presigner != nil {
		st.presign = func(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
			req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			}, s3.WithPresignExpires(ttl))
			if err != nil {
				return "", err
			}
			return req.URL, nil
		}
	}
	return st
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64, progress interfaces.ProgressFunc) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        newProgressReader(body, size, progress),
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *S3Storage) DownloadURL(ctx context.Context, ref string) (string, error) {
	key, ok := s.keyOf(ref)
	if !ok || s.presign == nil {
		return ref, nil
	}
	return s.presign(ctx, s.bucket, key, s.ttl)
}

func (s *S3Storage) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.baseURL + "/" + strings.Join(parts, "/")
}

// keyOf extracts the object key from a URL produced by objectURL. A bare
// key is accepted as well.
func (s *S3Storage) keyOf(ref string) (string, bool) {
	if !strings.Contains(ref, "://") {
		return ref, ref != ""
	}
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(ref, prefix))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
