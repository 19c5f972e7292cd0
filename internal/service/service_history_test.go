package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/transparent-media/library/internal/mock"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

func TestHistoryService_SaveProgress_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	svcs, local := newTestServices(t, remote)
	ctx := context.Background()

	now := time.Now().UTC()
	remote.EXPECT().UpsertHistory(gomock.Any(), models.HistoryRecord{UserID: 42, ContentID: 7, PageNumber: 10}).
		Return(models.HistoryRecord{ID: 5, UserID: 42, ContentID: 7, PageNumber: 10, LastReadAt: now}, nil)

	record, err := svcs.HistoryService.SaveProgress(ctx, 42, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), record.ID)
	assert.Equal(t, 10, record.PageNumber)

	mirrored, err := local.LatestProgress(42, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, mirrored.PageNumber)
}

// Saving twice keeps exactly one record per (user, content) pair, holding the
// most recent position.
func TestHistoryService_SaveProgress_Overwrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	svcs, local := newTestServices(t, remote)
	ctx := context.Background()

	remote.EXPECT().UpsertHistory(gomock.Any(), gomock.Any()).Return(models.HistoryRecord{}, errConnRefused).Times(2)

	_, err := svcs.HistoryService.SaveProgress(ctx, 42, 7, 10)
	require.NoError(t, err)
	_, err = svcs.HistoryService.SaveProgress(ctx, 42, 7, 25)
	require.NoError(t, err)

	record, err := local.LatestProgress(42, 7)
	require.NoError(t, err)
	assert.Equal(t, 25, record.PageNumber)
	assert.Len(t, local.ListHistory(42), 1)
}

func TestHistoryService_SaveProgress_InvalidPage(t *testing.T) {
	svcs, _ := newTestServices(t, nil)

	_, err := svcs.HistoryService.SaveProgress(context.Background(), 42, 7, 0)
	assert.ErrorIs(t, err, store.ErrInvalidPageNumber)
}

func TestHistoryService_LatestProgress_NotFound(t *testing.T) {
	svcs, _ := newTestServices(t, nil)

	_, err := svcs.HistoryService.LatestProgress(context.Background(), 42, 7)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHistoryService_ListHistory_MergesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	svcs, local := newTestServices(t, remote)
	ctx := context.Background()

	_, err := local.SaveProgress(42, 9, 3)
	require.NoError(t, err)

	now := time.Now().UTC()
	remote.EXPECT().ListHistory(gomock.Any(), int64(42)).Return([]models.HistoryRecord{
		{ID: 1, UserID: 42, ContentID: 7, PageNumber: 12, LastReadAt: now},
	}, nil)

	records, err := svcs.HistoryService.ListHistory(ctx, 42)
	require.NoError(t, err)

	// the remote batch is merged in, the offline record survives
	require.Len(t, records, 2)
	assert.Equal(t, int64(7), records[0].ContentID, "most recently read first")
}

func TestHistoryService_ListHistory_RemoteDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteLibrary(ctrl)
	svcs, local := newTestServices(t, remote)
	ctx := context.Background()

	_, err := local.SaveProgress(42, 9, 3)
	require.NoError(t, err)

	remote.EXPECT().ListHistory(gomock.Any(), int64(42)).Return(nil, errConnRefused)

	records, err := svcs.HistoryService.ListHistory(ctx, 42)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(9), records[0].ContentID)
}
