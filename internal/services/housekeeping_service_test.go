// filepath: internal/services/housekeeping_service_test.go
package services

import (
	"context"
	"errors"
	"flowershop/internal/repository"
	"flowershop/internal/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTriggerSweep(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	blobs := new(mockBlobs)
	old := time.Now().Add(-time.Hour)

	catalog.On("ImageURLs", ctx).Return([]string{"http://shop.local/images/flower_keep.jpg"}, nil)
	blobs.On("List", ctx).Return([]storage.BlobInfo{
		{Key: "flower_keep.jpg", ModTime: old},
		{Key: "flower_lost.jpg", ModTime: old},
	}, nil)
	blobs.On("Remove", ctx, "flower_lost.jpg").Return(nil).Once()

	svc := NewHousekeepingService(catalog, blobs, 0, 15*time.Minute)

	report, err := svc.TriggerSweep(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"flower_lost.jpg"}, report.Orphaned)
	blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)

	report, err = svc.TriggerSweep(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
	blobs.AssertExpectations(t)

	// Zero interval: no background worker.
	svc.Start()
	assert.Nil(t, svc.worker)
	svc.Stop()
}

func TestTriggerSweep_UnavailableStore(t *testing.T) {
	svc := NewHousekeepingService(repository.Unavailable{Cause: errors.New("offline")}, new(mockBlobs), 0, time.Minute)
	_, err := svc.TriggerSweep(context.Background(), true)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
