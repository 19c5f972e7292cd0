package service

import (
	"context"
	"sync"
	"time"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/models"
)

type refreshJob struct {
	content    ContentService
	favourites FavouriteService
	history    HistoryService
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that periodically pulls content,
// favourites, and history through the service layer so the local mirror stays
// warm. The job is idle until Start is called.
func NewRefreshJob(content ContentService, favourites FavouriteService, history HistoryService, log *logger.Logger) RefreshJob {
	return &refreshJob{
		content:    content,
		favourites: favourites,
		history:    history,
		logger:     log,
	}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, userID)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh pulls each collection once. The services already absorb remote
// failures, so a refresh during an outage is a cheap no-op that doubles as a
// breaker probe.
func (j *refreshJob) refresh(ctx context.Context, userID int64) {
	if _, err := j.content.ListContent(ctx, userID, models.ContentQuery{}); err != nil {
		j.logger.Warn().Err(err).Str("func", "refresh").Msg("content refresh failed")
	}
	if _, err := j.favourites.ListFavourites(ctx, userID); err != nil {
		j.logger.Warn().Err(err).Str("func", "refresh").Msg("favourites refresh failed")
	}
	if _, err := j.history.ListHistory(ctx, userID); err != nil {
		j.logger.Warn().Err(err).Str("func", "refresh").Msg("history refresh failed")
	}
}
