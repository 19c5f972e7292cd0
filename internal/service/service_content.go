package service

import (
	"context"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

type contentService struct {
	local  *store.LocalStore
	gate   *remoteGate
	logger *logger.Logger
}

func NewContentService(local *store.LocalStore, gate *remoteGate, log *logger.Logger) ContentService {
	return &contentService{local: local, gate: gate, logger: log}
}

// ListContent implements ContentService. A reachable remote store refreshes the
// local mirror before the query runs; filtering always happens against the
// mirror so online and offline results come from the same code path.
func (s *contentService) ListContent(ctx context.Context, userID int64, query models.ContentQuery) ([]models.Content, error) {
	batch, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) ([]models.Content, error) {
		if query.HasKeyword() {
			return remote.SearchContent(ctx, query.Keyword)
		}
		return remote.ListContent(ctx)
	})
	if err == nil {
		outcome := s.local.MergeContent(batch)
		if outcome.Dirty() {
			s.logger.Debug().Str("func", "ListContent").
				Int("inserted", outcome.Inserted).
				Int("updated", outcome.Updated).
				Msg("local mirror refreshed")
		}
	} else {
		s.logger.Debug().Err(err).Str("func", "ListContent").Msg("remote unavailable, serving local mirror")
	}

	items := s.local.ListContent(query)
	for i := range items {
		items[i].Favourite = s.local.IsFavourite(userID, items[i].ID)
	}

	return items, nil
}

// GetContent implements ContentService. Single-item reads answer straight from
// the local mirror.
func (s *contentService) GetContent(ctx context.Context, userID int64, contentID int64) (models.Content, error) {
	content, err := s.local.GetContent(contentID)
	if err != nil {
		return models.Content{}, err
	}

	content.Favourite = s.local.IsFavourite(userID, contentID)

	return content, nil
}

// SaveContent implements ContentService. When the remote store accepts the item
// the server-assigned record is merged into the mirror; otherwise the item is
// kept locally under a provisional negative ID until a later refresh.
func (s *contentService) SaveContent(ctx context.Context, content models.Content) (models.Content, error) {
	created, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) (models.Content, error) {
		return remote.InsertContent(ctx, content)
	})
	if err == nil {
		s.local.MergeContent([]models.Content{created})
		return created, nil
	}

	s.logger.Debug().Err(err).Str("func", "SaveContent").Str("title", content.Title).Msg("remote unavailable, storing item locally")

	return s.local.SaveContent(content), nil
}

// Categories implements ContentService. Categories are derived from the mirror,
// which the list and refresh paths keep current.
func (s *contentService) Categories(_ context.Context) ([]string, error) {
	return s.local.Categories(), nil
}
