package service

import (
	"context"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

type favouriteService struct {
	local  *store.LocalStore
	gate   *remoteGate
	logger *logger.Logger
}

func NewFavouriteService(local *store.LocalStore, gate *remoteGate, log *logger.Logger) FavouriteService {
	return &favouriteService{local: local, gate: gate, logger: log}
}

// ToggleFavourite implements FavouriteService. The remote store decides the
// resulting membership when reachable; the authoritative list is then pulled
// and reconciled into the mirror. When only the toggle succeeds the local mark
// is forced to match the remote answer so the two never disagree.
func (s *favouriteService) ToggleFavourite(ctx context.Context, userID int64, contentID int64) (bool, error) {
	member, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) (bool, error) {
		return remote.ToggleFavourite(ctx, userID, contentID)
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "ToggleFavourite").Int64("userID", userID).Int64("contentID", contentID).Msg("remote unavailable, toggling locally")
		return s.local.ToggleFavourite(userID, contentID), nil
	}

	batch, listErr := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) ([]models.Favourite, error) {
		return remote.ListFavourites(ctx, userID)
	})
	if listErr == nil {
		s.local.MergeFavourites(userID, batch)
	} else if s.local.IsFavourite(userID, contentID) != member {
		s.local.ToggleFavourite(userID, contentID)
	}

	return member, nil
}

// IsFavourite implements FavouriteService. Membership checks answer from the
// mirror without touching the network.
func (s *favouriteService) IsFavourite(_ context.Context, userID int64, contentID int64) (bool, error) {
	return s.local.IsFavourite(userID, contentID), nil
}

// ListFavourites implements FavouriteService. A reachable remote store is
// authoritative for the full set, including removals made on other devices.
func (s *favouriteService) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	batch, err := callRemote(ctx, s.gate, func(ctx context.Context, remote store.RemoteLibrary) ([]models.Favourite, error) {
		return remote.ListFavourites(ctx, userID)
	})
	if err == nil {
		s.local.MergeFavourites(userID, batch)
	} else {
		s.logger.Debug().Err(err).Str("func", "ListFavourites").Int64("userID", userID).Msg("remote unavailable, serving local favourites")
	}

	return s.local.ListFavourites(userID), nil
}
