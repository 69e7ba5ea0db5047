package uploader

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ds124wfegd/digit-canvas/config"
)

const contentTypePNG = "image/png"

// Uploader sends encoded digit images to S3-compatible object storage.
type Uploader interface {
	IsConfigured() bool
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, digit int, payload []byte) error
}

type minioUploader struct {
	cfg    config.StorageConfig
	client *minio.Client

	mu         sync.Mutex
	lastMillis int64
}

func New(cfg config.StorageConfig) (Uploader, error) {
	u := &minioUploader{cfg: cfg}
	if !configured(cfg) {
		// Soft guard: the service still starts, submit-all refuses to run.
		return u, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	u.client = client
	return u, nil
}

func (u *minioUploader) IsConfigured() bool {
	return u.client != nil
}

func (u *minioUploader) EnsureBucket(ctx context.Context) error {
	if u.client == nil {
		return nil
	}
	exists, err := u.client.BucketExists(ctx, u.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", u.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := u.client.MakeBucket(ctx, u.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", u.cfg.Bucket, err)
	}
	return nil
}

func (u *minioUploader) Upload(ctx context.Context, digit int, payload []byte) error {
	if u.client == nil {
		return fmt.Errorf("storage client is not configured")
	}

	key := u.objectKey(digit)
	_, err := u.client.PutObject(ctx, u.cfg.Bucket, key,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: contentTypePNG})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// objectKey builds "{digit}/{timestamp}.png". The millisecond timestamp is
// forced strictly monotonic so two uploads in the same millisecond cannot
// collide on a path.
func (u *minioUploader) objectKey(digit int) string {
	u.mu.Lock()
	defer u.mu.Unlock()

	millis := time.Now().UnixMilli()
	if millis <= u.lastMillis {
		millis = u.lastMillis + 1
	}
	u.lastMillis = millis
	return fmt.Sprintf("%d/%d.png", digit, millis)
}

var placeholders = []string{
	"",
	"YOUR_STORAGE_ENDPOINT",
	"YOUR_ACCESS_KEY",
	"YOUR_SECRET_KEY",
	"YOUR_BUCKET",
	"changeme",
}

// configured rejects empty and obvious placeholder sentinel values.
// A soft guard against running unconfigured, not a full validation.
func configured(cfg config.StorageConfig) bool {
	for _, v := range []string{cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket} {
		for _, p := range placeholders {
			if strings.EqualFold(v, p) {
				return false
			}
		}
	}
	return true
}
