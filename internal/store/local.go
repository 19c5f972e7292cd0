package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/models"
)

// stateVersion tags the persisted blob so a future layout change can detect
// and migrate old files instead of silently misreading them.
const stateVersion = 1

type entityKind int

const (
	kindUser entityKind = iota
	kindContent
	kindFavourite
	kindHistory
)

// libraryState is the serializable container for the whole local mirror:
// the four entity collections, the four independent negative-id counters,
// and the persisted theme preference.
//
// Counters hold the next id to hand out and only ever decrease, so ids
// allocated offline can never collide with the positive ids assigned by the
// remote store.
type libraryState struct {
	Version int `json:"version"`

	NextUserID      int64 `json:"next_user_id"`
	NextContentID   int64 `json:"next_content_id"`
	NextFavouriteID int64 `json:"next_favourite_id"`
	NextHistoryID   int64 `json:"next_history_id"`

	Users      map[int64]models.User           `json:"users"`
	Contents   map[int64]models.Content        `json:"contents"`
	Favourites map[string]models.Favourite     `json:"favourites"`
	History    map[string]models.HistoryRecord `json:"history"`

	Theme string `json:"theme"`
}

func newLibraryState(theme string) libraryState {
	return libraryState{
		Version:         stateVersion,
		NextUserID:      -1,
		NextContentID:   -1,
		NextFavouriteID: -1,
		NextHistoryID:   -1,
		Users:           make(map[int64]models.User),
		Contents:        make(map[int64]models.Content),
		Favourites:      make(map[string]models.Favourite),
		History:         make(map[string]models.HistoryRecord),
		Theme:           theme,
	}
}

// LocalStore is the durable local mirror of the library. It keeps all four
// entity collections in memory behind a single reader-writer lock and writes
// the whole state to one JSON file after every successful mutation.
//
// Reads return deep copies, so callers can never corrupt store state through
// a returned value. A persist failure is deliberately swallowed: the
// in-memory state stays correct and only durability for that write is lost.
type LocalStore struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	state libraryState
}

// NewLocalStore opens (or initialises) the local mirror at path. A missing
// state file starts empty silently; an unreadable or corrupt one is reported
// loudly once and also starts empty, because silent data loss should be
// visible in the logs but must never prevent startup.
func NewLocalStore(path, defaultTheme string, log *logger.Logger) *LocalStore {
	s := &LocalStore{
		path:   path,
		logger: log,
		state:  newLibraryState(defaultTheme),
	}
	s.load(defaultTheme)
	return s
}

func (s *LocalStore) load(defaultTheme string) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error().Err(err).Str("path", s.path).
				Msg("local state file unreadable, starting with empty state")
		}
		return
	}

	var st libraryState
	if err = json.Unmarshal(data, &st); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).
			Msg("local state file corrupt, starting with empty state")
		return
	}

	if st.Users == nil {
		st.Users = make(map[int64]models.User)
	}
	if st.Contents == nil {
		st.Contents = make(map[int64]models.Content)
	}
	if st.Favourites == nil {
		st.Favourites = make(map[string]models.Favourite)
	}
	if st.History == nil {
		st.History = make(map[string]models.HistoryRecord)
	}

	// Local counters must always point at an unused negative id.
	for _, next := range []*int64{&st.NextUserID, &st.NextContentID, &st.NextFavouriteID, &st.NextHistoryID} {
		if *next >= 0 {
			*next = -1
		}
	}
	if st.Theme == "" {
		st.Theme = defaultTheme
	}
	st.Version = stateVersion

	s.state = st
}

// persistLocked writes the whole state to disk. Must be called with the
// write lock held so reads never observe a partially-applied state.
//
// Persistence failures are swallowed: the in-memory state remains
// authoritative and usable, only durability of this write is lost. The
// failure is still logged as a warning because the data is at risk if the
// process crashes before a later persist succeeds.
func (s *LocalStore) persistLocked() {
	if err := s.persist(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).
			Msg("local state not persisted, continuing with in-memory state")
	}
}

func (s *LocalStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local state dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local state: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local state file: %w", err)
	}

	return nil
}

// allocateLocalID hands out the next negative id for the given entity type
// and decrements its counter. Must be called with the write lock held.
func (s *LocalStore) allocateLocalID(kind entityKind) int64 {
	var next *int64
	switch kind {
	case kindUser:
		next = &s.state.NextUserID
	case kindContent:
		next = &s.state.NextContentID
	case kindFavourite:
		next = &s.state.NextFavouriteID
	default:
		next = &s.state.NextHistoryID
	}

	id := *next
	*next--
	return id
}

func favKey(userID, contentID int64) string {
	return fmt.Sprintf("%d:%d", userID, contentID)
}

// FindOrCreateUser returns the user with the given username (matched
// case-insensitively), creating it with a local negative id when absent.
func (s *LocalStore) FindOrCreateUser(username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.SameUsername(username) {
			return u.Clone(), nil
		}
	}

	user := models.User{ID: s.allocateLocalID(kindUser), Username: username}
	s.state.Users[user.ID] = user
	s.persistLocked()

	return user.Clone(), nil
}

// FindUserByName returns the user with the given username or ErrNotFound.
func (s *LocalStore) FindUserByName(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.state.Users {
		if u.SameUsername(username) {
			return u.Clone(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// ListContent returns deep copies of all content matching the query,
// ordered by added-time descending with records lacking a timestamp last.
func (s *LocalStore) ListContent(query models.ContentQuery) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Content, 0, len(s.state.Contents))
	for _, c := range s.state.Contents {
		if query.Matches(c) {
			result = append(result, c.Clone())
		}
	}

	sortContentByAddedDesc(result)
	return result
}

// GetContent returns a deep copy of the content with the given id, or
// ErrNotFound.
func (s *LocalStore) GetContent(id int64) (models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.state.Contents[id]
	if !ok {
		return models.Content{}, ErrNotFound
	}
	return c.Clone(), nil
}

// SaveContent inserts or updates a content record. A zero id means the
// record is new and has never been seen by the remote store, so a local
// negative id is allocated for it.
func (s *LocalStore) SaveContent(content models.Content) models.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	if content.ID == 0 {
		content.ID = s.allocateLocalID(kindContent)
	}
	if content.Category == nil {
		cat := models.DefaultCategory
		content.Category = &cat
	}

	stored := content.Clone()
	stored.Favourite = false // derived projection, never persisted
	s.state.Contents[stored.ID] = stored
	s.persistLocked()

	return content
}

// Categories returns all distinct content categories sorted
// case-insensitively, with the default category always present and first.
func (s *LocalStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, c := range s.state.Contents {
		if c.Category == nil || strings.TrimSpace(*c.Category) == "" {
			continue
		}
		if _, ok := seen[*c.Category]; ok {
			continue
		}
		seen[*c.Category] = struct{}{}
		categories = append(categories, *c.Category)
	}

	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i]) < strings.ToLower(categories[j])
	})

	if _, ok := seen[models.DefaultCategory]; !ok {
		categories = append([]string{models.DefaultCategory}, categories...)
	} else {
		for i, cat := range categories {
			if cat == models.DefaultCategory && i > 0 {
				categories = append(categories[:i], categories[i+1:]...)
				categories = append([]string{models.DefaultCategory}, categories...)
				break
			}
		}
	}

	return categories
}

// ToggleFavourite flips the favourite state for the pair and reports the
// resulting membership. A new favourite gets a local negative id.
func (s *LocalStore) ToggleFavourite(userID, contentID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favKey(userID, contentID)
	if _, ok := s.state.Favourites[key]; ok {
		delete(s.state.Favourites, key)
		s.persistLocked()
		return false
	}

	s.state.Favourites[key] = models.Favourite{
		ID:        s.allocateLocalID(kindFavourite),
		UserID:    userID,
		ContentID: contentID,
		AddedAt:   time.Now(),
	}
	s.persistLocked()
	return true
}

// IsFavourite reports whether the pair is currently a favourite.
func (s *LocalStore) IsFavourite(userID, contentID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.state.Favourites[favKey(userID, contentID)]
	return ok
}

// ListFavourites returns the user's favourites ordered by added-time
// descending.
func (s *LocalStore) ListFavourites(userID int64) []models.Favourite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Favourite, 0)
	for _, f := range s.state.Favourites {
		if f.UserID == userID {
			result = append(result, f.Clone())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AddedAt.After(result[j].AddedAt)
	})
	return result
}

// SaveProgress inserts or refreshes the latest-position record for the
// pair. The record keeps its identity on refresh; a brand-new record gets a
// local negative id.
func (s *LocalStore) SaveProgress(userID, contentID int64, pageNumber int) (models.HistoryRecord, error) {
	if pageNumber < 1 {
		return models.HistoryRecord{}, ErrInvalidPageNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := favKey(userID, contentID)
	record, ok := s.state.History[key]
	if !ok {
		record = models.HistoryRecord{
			ID:        s.allocateLocalID(kindHistory),
			UserID:    userID,
			ContentID: contentID,
		}
	}
	record.PageNumber = pageNumber
	record.LastReadAt = time.Now()

	s.state.History[key] = record
	s.persistLocked()

	return record.Clone(), nil
}

// LatestProgress returns the latest-position record for the pair, or
// ErrNotFound when the user never opened the content.
func (s *LocalStore) LatestProgress(userID, contentID int64) (models.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.state.History[favKey(userID, contentID)]
	if !ok {
		return models.HistoryRecord{}, ErrNotFound
	}
	return record.Clone(), nil
}

// ListHistory returns the user's history ordered by last-read time
// descending.
func (s *LocalStore) ListHistory(userID int64) []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.HistoryRecord, 0)
	for _, h := range s.state.History {
		if h.UserID == userID {
			result = append(result, h.Clone())
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastReadAt.After(result[j].LastReadAt)
	})
	return result
}

// Theme returns the persisted theme preference.
func (s *LocalStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// SetTheme persists the theme preference so the user's choice survives
// restarts.
func (s *LocalStore) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Theme == theme {
		return
	}
	s.state.Theme = theme
	s.persistLocked()
}

func sortContentByAddedDesc(list []models.Content) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].AddedAt, list[j].AddedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
