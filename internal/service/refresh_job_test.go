package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/models"
)

type stubContentService struct {
	ContentService
	calls atomic.Int32
}

func (s *stubContentService) ListContent(context.Context, int64, models.ContentQuery) ([]models.Content, error) {
	s.calls.Add(1)
	return nil, nil
}

type stubFavouriteService struct {
	FavouriteService
	calls atomic.Int32
}

func (s *stubFavouriteService) ListFavourites(context.Context, int64) ([]models.Favourite, error) {
	s.calls.Add(1)
	return nil, nil
}

type stubHistoryService struct {
	HistoryService
	calls atomic.Int32
}

func (s *stubHistoryService) ListHistory(context.Context, int64) ([]models.HistoryRecord, error) {
	s.calls.Add(1)
	return nil, nil
}

func TestRefreshJob_StartAndStop(t *testing.T) {
	content := &stubContentService{}
	favourites := &stubFavouriteService{}
	history := &stubHistoryService{}

	job := NewRefreshJob(content, favourites, history, logger.Nop())
	job.Start(context.Background(), 42, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return content.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	settled := content.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, content.calls.Load(), "no refreshes after Stop")
	assert.Equal(t, content.calls.Load(), favourites.calls.Load())
	assert.Equal(t, content.calls.Load(), history.calls.Load())
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(&stubContentService{}, &stubFavouriteService{}, &stubHistoryService{}, logger.Nop())

	// Stop on an idle job is a no-op
	job.Stop()
}

func TestRefreshJob_RestartReplacesPrevious(t *testing.T) {
	content := &stubContentService{}
	favourites := &stubFavouriteService{}
	history := &stubHistoryService{}

	job := NewRefreshJob(content, favourites, history, logger.Nop())
	job.Start(context.Background(), 42, time.Hour)
	job.Start(context.Background(), 42, 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return content.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}
