package service

import (
	"context"
	"time"

	"github.com/transparent-media/library/models"
)

// UserService defines the contract for resolving the active library user.
type UserService interface {
	// FindOrCreateUser resolves username to a user record, creating one if it
	// does not exist. The remote store is consulted first; when it is
	// unreachable the user is created locally with a provisional negative ID
	// that is unified with the remote one on a later successful call.
	// Returns store.ErrEmptyUsername when username is blank.
	FindOrCreateUser(ctx context.Context, username string) (models.User, error)
}

// ContentService defines the contract for browsing and registering library items.
// Reads always answer from the local mirror; a reachable remote store refreshes
// the mirror first, so callers see the same API whether online or offline.
type ContentService interface {
	// ListContent returns all items matching query, newest first. Favourite
	// flags are projected for userID.
	ListContent(ctx context.Context, userID int64, query models.ContentQuery) ([]models.Content, error)

	// GetContent returns a single item by ID with the favourite flag projected
	// for userID. Returns store.ErrNotFound when no such item exists.
	GetContent(ctx context.Context, userID int64, contentID int64) (models.Content, error)

	// SaveContent registers a new item. When the remote store is reachable the
	// item receives its server-assigned positive ID; otherwise it is stored
	// locally under a provisional negative ID.
	SaveContent(ctx context.Context, content models.Content) (models.Content, error)

	// Categories returns every distinct category present in the library,
	// with the default category always first.
	Categories(ctx context.Context) ([]string, error)
}

// FavouriteService defines the contract for per-user favourite marks.
type FavouriteService interface {
	// ToggleFavourite flips the favourite mark for (userID, contentID) and
	// returns the resulting membership: true when the item is now a favourite.
	ToggleFavourite(ctx context.Context, userID int64, contentID int64) (bool, error)

	// IsFavourite reports whether contentID is currently a favourite of userID.
	IsFavourite(ctx context.Context, userID int64, contentID int64) (bool, error)

	// ListFavourites returns the user's favourites, most recently added first.
	ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error)
}

// HistoryService defines the contract for reading-progress records.
type HistoryService interface {
	// SaveProgress records that userID reached pageNumber in contentID. There is
	// at most one record per (user, content) pair; saving again overwrites the
	// previous position. Returns store.ErrInvalidPageNumber when pageNumber < 1.
	SaveProgress(ctx context.Context, userID int64, contentID int64, pageNumber int) (models.HistoryRecord, error)

	// LatestProgress returns the saved position for (userID, contentID).
	// Returns store.ErrNotFound when the user never opened the item.
	LatestProgress(ctx context.Context, userID int64, contentID int64) (models.HistoryRecord, error)

	// ListHistory returns the user's reading history, most recently read first.
	ListHistory(ctx context.Context, userID int64) ([]models.HistoryRecord, error)
}

// RefreshJob defines the contract for a background worker that periodically
// refreshes the local mirror from the remote store.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
