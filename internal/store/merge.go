package store

import (
	"time"

	"github.com/transparent-media/library/models"
)

// Merge methods fold remote-sourced batches into the local mirror. They all
// share the same discipline: per-record classification into an explicit
// [models.MergeAction], a single write lock for the whole batch, and one
// persist at the end only when the outcome is dirty. Merging the same batch
// twice therefore leaves the state byte-identical and skips the second
// persist entirely.
//
// Records that exist only locally (negative ids, never confirmed by the
// remote store) survive every merge except the favourite set reconciliation,
// where the incoming per-user set is authoritative by design.

// MergeUser unifies a remote-confirmed user with the local mirror.
//
// Matching tries the id first and falls back to a case-insensitive username
// match, because a user created offline carries a local negative id until
// the remote store confirms it. On a username match the local record is
// re-keyed to the remote id and every favourite and history record owned by
// the old id follows it, so no duplicate username entry can ever appear.
func (s *LocalStore) MergeUser(remote models.User) (models.User, models.MergeAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.state.Users[remote.ID]; ok {
		if existing.Username == remote.Username {
			return existing.Clone(), models.MergeUnchanged
		}
		s.state.Users[remote.ID] = remote.Clone()
		s.persistLocked()
		return remote.Clone(), models.MergeUpdated
	}

	for id, existing := range s.state.Users {
		if !existing.SameUsername(remote.Username) {
			continue
		}

		delete(s.state.Users, id)
		s.state.Users[remote.ID] = remote.Clone()
		s.rekeyUserLocked(id, remote.ID)
		s.persistLocked()
		return remote.Clone(), models.MergeUpdated
	}

	s.state.Users[remote.ID] = remote.Clone()
	s.persistLocked()
	return remote.Clone(), models.MergeInserted
}

// rekeyUserLocked moves every favourite and history record from oldID to
// newID. Must be called with the write lock held.
func (s *LocalStore) rekeyUserLocked(oldID, newID int64) {
	for key, f := range s.state.Favourites {
		if f.UserID != oldID {
			continue
		}
		delete(s.state.Favourites, key)
		f.UserID = newID
		s.state.Favourites[favKey(newID, f.ContentID)] = f
	}

	for key, h := range s.state.History {
		if h.UserID != oldID {
			continue
		}
		delete(s.state.History, key)
		h.UserID = newID
		s.state.History[favKey(newID, h.ContentID)] = h
	}
}

// MergeContent folds a batch of remote content records into the mirror.
// Each incoming record is matched by id: absent records are inserted with
// their remote id preserved, present ones are overwritten only when any
// field actually differs. Local-only records are never removed; the merge
// is additive per id, not a full replace.
func (s *LocalStore) MergeContent(batch []models.Content) models.MergeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outcome models.MergeOutcome
	for _, remote := range batch {
		existing, ok := s.state.Contents[remote.ID]
		switch {
		case !ok:
			outcome.Add(models.MergeInserted)
		case contentEqual(existing, remote):
			outcome.Add(models.MergeUnchanged)
			continue
		default:
			outcome.Add(models.MergeUpdated)
		}

		stored := remote.Clone()
		stored.Favourite = false
		s.state.Contents[stored.ID] = stored
	}

	if outcome.Dirty() {
		s.persistLocked()
	}
	return outcome
}

// MergeFavourites reconciles the user's local favourite set against the
// authoritative remote set. Favourites are binary membership, so this is a
// set reconciliation rather than a per-record merge: local favourites for
// the user whose content is absent from the batch are deleted, incoming
// ones are inserted when missing or refreshed when their identity or
// timestamp moved. Other users' favourites are untouched.
func (s *LocalStore) MergeFavourites(userID int64, batch []models.Favourite) models.MergeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outcome models.MergeOutcome

	incoming := make(map[int64]models.Favourite, len(batch))
	for _, f := range batch {
		if f.UserID != userID {
			continue
		}
		incoming[f.ContentID] = f
	}

	for key, f := range s.state.Favourites {
		if f.UserID != userID {
			continue
		}
		if _, ok := incoming[f.ContentID]; !ok {
			delete(s.state.Favourites, key)
			outcome.Add(models.MergeDeleted)
		}
	}

	for contentID, remote := range incoming {
		key := favKey(userID, contentID)
		existing, ok := s.state.Favourites[key]
		switch {
		case !ok:
			outcome.Add(models.MergeInserted)
		case existing.ID == remote.ID && existing.AddedAt.Equal(remote.AddedAt):
			outcome.Add(models.MergeUnchanged)
			continue
		default:
			outcome.Add(models.MergeUpdated)
		}
		s.state.Favourites[key] = remote.Clone()
	}

	if outcome.Dirty() {
		s.persistLocked()
	}
	return outcome
}

// MergeHistory folds the user's remote history into the mirror, keyed by
// (user, content): present records are refreshed in place, absent ones are
// inserted. Nothing is ever deleted, history is a monotonic latest-position
// set and the remote store never shrinks it.
func (s *LocalStore) MergeHistory(userID int64, batch []models.HistoryRecord) models.MergeOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outcome models.MergeOutcome
	for _, remote := range batch {
		if remote.UserID != userID {
			continue
		}

		key := favKey(userID, remote.ContentID)
		existing, ok := s.state.History[key]
		switch {
		case !ok:
			outcome.Add(models.MergeInserted)
		case existing.ID == remote.ID &&
			existing.PageNumber == remote.PageNumber &&
			existing.LastReadAt.Equal(remote.LastReadAt):
			outcome.Add(models.MergeUnchanged)
			continue
		default:
			outcome.Add(models.MergeUpdated)
		}
		s.state.History[key] = remote.Clone()
	}

	if outcome.Dirty() {
		s.persistLocked()
	}
	return outcome
}

// contentEqual reports null-safe value equality of every mutable field.
func contentEqual(a, b models.Content) bool {
	if a.ID != b.ID ||
		a.Title != b.Title ||
		a.FilePath != b.FilePath ||
		a.FileType != b.FileType ||
		a.SizeBytes != b.SizeBytes {
		return false
	}
	if !timePtrEqual(a.AddedAt, b.AddedAt) {
		return false
	}
	if !stringPtrEqual(a.Author, b.Author) ||
		!stringPtrEqual(a.Category, b.Category) ||
		!stringPtrEqual(a.Description, b.Description) {
		return false
	}
	if len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if a.Tags[i] != b.Tags[i] {
			return false
		}
	}
	return true
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
