package reports_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"inventory-sync/core/reports"
	"inventory-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestArchiver_Archive(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sync-reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "sync-reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	archiver := reports.NewArchiver(client, "sync-reports", "reports", zap.NewNop())
	startedAt := time.Date(2026, 8, 25, 12, 30, 0, 0, time.UTC)

	object, err := archiver.Archive(context.Background(), "run-1", startedAt, map[string]int{"checked": 3})

	assert.NoError(t, err)
	assert.Equal(t, "reports/20260825T123000Z-run-1.json", object)
	client.AssertExpectations(t)
}

func TestArchiver_CreatesBucketOnFirstUse(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sync-reports").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "sync-reports", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "sync-reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	archiver := reports.NewArchiver(client, "sync-reports", "reports", zap.NewNop())

	_, err := archiver.Archive(context.Background(), "run-1", time.Now(), struct{}{})

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchiver_Disabled(t *testing.T) {
	// No bucket configured: archiving is a no-op and must not touch storage.
	archiver := reports.NewArchiver(new(mocks.Client), "", "reports", zap.NewNop())

	assert.False(t, archiver.Enabled())
	object, err := archiver.Archive(context.Background(), "run-1", time.Now(), struct{}{})
	assert.NoError(t, err)
	assert.Empty(t, object)
}

func TestArchiver_BucketCheckFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sync-reports").Return(false, fmt.Errorf("connection refused"))

	archiver := reports.NewArchiver(client, "sync-reports", "reports", zap.NewNop())

	_, err := archiver.Archive(context.Background(), "run-1", time.Now(), struct{}{})
	assert.Error(t, err)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
