package service

import (
	"context"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

type historyService struct {
	local  *store.LocalStore
	gate   *remoteGate
	logger *logger.Logger
}

func NewHistoryService(local *store.LocalStore, gate *remoteGate, log *logger.Logger) HistoryService {
	return &historyService{local: local, gate: gate, logger: log}
}

// SaveProgress implements HistoryService. The remote store stamps the record
// when reachable; the stored record is then upserted into the mirror. Offline
// saves are stamped locally and reconciled on a later refresh.
func (s *historyService) SaveProgress(ctx context.Context, userID int64, contentID int64, pageNumber int) (models.HistoryRecord, error) {
	if pageNumber < 1 {
		return models.HistoryRecord{}, store.ErrInvalidPageNumber
	}

	record := models.HistoryRecord{UserID: userID, ContentID: contentID, PageNumber: pageNumber}

	stored, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) (models.HistoryRecord, error) {
		return remote.UpsertHistory(ctx, record)
	})
	if err == nil {
		s.local.MergeHistory(userID, []models.HistoryRecord{stored})
		return stored, nil
	}

	s.logger.Debug().Err(err).Str("func", "SaveProgress").Int64("userID", userID).Int64("contentID", contentID).Msg("remote unavailable, saving progress locally")

	return s.local.SaveProgress(userID, contentID, pageNumber)
}

// LatestProgress implements HistoryService. Position lookups answer from the
// mirror without touching the network.
func (s *historyService) LatestProgress(_ context.Context, userID int64, contentID int64) (models.HistoryRecord, error) {
	return s.local.LatestProgress(userID, contentID)
}

// ListHistory implements HistoryService.
func (s *historyService) ListHistory(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	batch, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) ([]models.HistoryRecord, error) {
		return remote.ListHistory(ctx, userID)
	})
	if err == nil {
		s.local.MergeHistory(userID, batch)
	} else {
		s.logger.Debug().Err(err).Str("func", "ListHistory").Int64("userID", userID).Msg("remote unavailable, serving local history")
	}

	return s.local.ListHistory(userID), nil
}
