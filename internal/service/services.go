package service

import (
	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
)

// Services bundles every consumer-facing service behind a single constructor.
// All four services share one gate, so a remote outage observed by any of them
// opens the breaker for all of them.
type Services struct {
	UserService      UserService
	ContentService   ContentService
	FavouriteService FavouriteService
	HistoryService   HistoryService
	RefreshJob       RefreshJob
}

// NewServices wires the service layer. remote may be nil, in which case every
// operation serves from the local store only.
func NewServices(local *store.LocalStore, remote store.RemoteLibrary, cfg config.Remote, log *logger.Logger) *Services {
	gate := newRemoteGate(remote, cfg, log)

	contentSvc := NewContentService(local, gate, log)
	favouriteSvc := NewFavouriteService(local, gate, log)
	historySvc := NewHistoryService(local, gate, log)

	return &Services{
		UserService:      NewUserService(local, gate, log),
		ContentService:   contentSvc,
		FavouriteService: favouriteSvc,
		HistoryService:   historySvc,
		RefreshJob:       NewRefreshJob(contentSvc, favouriteSvc, historySvc, log),
	}
}
