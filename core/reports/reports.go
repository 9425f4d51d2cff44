package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver uploads sync run reports to object storage as JSON documents.
// A nil Archiver or an empty bucket disables archiving.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewArchiver creates a report archiver writing to the given bucket.
func NewArchiver(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Enabled reports whether archiving is configured.
func (a *Archiver) Enabled() bool {
	return a != nil && a.bucket != ""
}

// Archive serializes the report and uploads it keyed by start time and run id.
// It returns the object name the report was stored under.
func (a *Archiver) Archive(ctx context.Context, runID string, startedAt time.Time, report any) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run report: %w", err)
	}

	objectName := fmt.Sprintf("%s/%s-%s.json", a.prefix, startedAt.UTC().Format("20060102T150405Z"), runID)
	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(encoded), int64(len(encoded)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload run report: %w", err)
	}

	a.logger.Info("Run report archived",
		zap.String("bucket", a.bucket),
		zap.String("object", objectName),
	)
	return objectName, nil
}

// ensureBucket creates the report bucket on first use.
func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check report bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create report bucket: %w", err)
	}
	return nil
}
