// Package store holds both sides of the library's persistence: the durable
// local mirror ([LocalStore]) that keeps the application usable offline, and
// the SQL-backed implementation of [RemoteLibrary], the authoritative remote
// store used when it is reachable.
//
// The merge methods on [LocalStore] (merge.go) fold remote-sourced batches
// into the mirror without duplicating identities or dropping local-only
// records; the service layer decides when to call them.
package store

import (
	"context"

	"github.com/transparent-media/library/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_library_mock.go -package=mock

// RemoteLibrary is the authoritative, network-accessible backing store.
// Implementations exist for direct SQL access (remote_sql.go) and for a
// hosted library server over HTTP (internal/adapter).
//
// Any method may fail with a connectivity or availability error; callers
// treat all such failures uniformly and fall back to the local mirror, so
// implementations do not need to distinguish failure modes beyond returning
// an error.
type RemoteLibrary interface {
	// FindOrCreateUser returns the user with the given username (matched
	// case-insensitively), creating it when absent. The returned user
	// always carries a positive remote identifier.
	FindOrCreateUser(ctx context.Context, username string) (models.User, error)

	// ListContent returns all content ordered by added-time descending.
	ListContent(ctx context.Context) ([]models.Content, error)

	// SearchContent returns content whose title contains keyword
	// (case-insensitive), ordered by added-time descending.
	SearchContent(ctx context.Context, keyword string) ([]models.Content, error)

	// InsertContent stores a new content record and returns it with its
	// remote-assigned identifier populated.
	InsertContent(ctx context.Context, content models.Content) (models.Content, error)

	// ToggleFavourite flips the favourite state for the pair and reports
	// the resulting membership: true when the pair is now a favourite.
	ToggleFavourite(ctx context.Context, userID, contentID int64) (bool, error)

	// ListFavourites returns the user's favourites ordered by added-time
	// descending. The result is the authoritative favourite set for the
	// user and is merged locally via set reconciliation.
	ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error)

	// UpsertHistory inserts or refreshes the latest-position record for
	// (record.UserID, record.ContentID) and returns the stored record with
	// its remote identifier populated.
	UpsertHistory(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error)

	// ListHistory returns the user's history ordered by last-read time
	// descending.
	ListHistory(ctx context.Context, userID int64) ([]models.HistoryRecord, error)

	// Ping verifies connectivity. Used by the availability gate to
	// re-probe a remote store that previously failed.
	Ping(ctx context.Context) error
}
