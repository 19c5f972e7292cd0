package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/models"
)

// sqlRemoteLibrary is the SQL-backed implementation of [RemoteLibrary]. It
// works unchanged against PostgreSQL and SQLite; the queries stick to the
// dialect subset both engines share.
type sqlRemoteLibrary struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLRemoteLibrary constructs a [RemoteLibrary] backed by the provided
// database connection.
func NewSQLRemoteLibrary(db *DB, log *logger.Logger) RemoteLibrary {
	log.Debug().Msg("creating sql remote library")
	return &sqlRemoteLibrary{
		db:     db,
		logger: log,
	}
}

// FindOrCreateUser implements [RemoteLibrary]. The lookup is
// case-insensitive; a lost creation race against another client resolves by
// re-reading the winner's record.
func (r *sqlRemoteLibrary) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrEmptyUsername
	}

	user, err := r.findUser(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, insertUser, username)
	if scanErr := row.Scan(&user.ID, &user.Username); scanErr != nil {
		if isUniqueViolation(scanErr) {
			// Another client created the same username concurrently.
			return r.findUser(ctx, username)
		}
		log.Err(scanErr).Str("func", "sqlRemoteLibrary.FindOrCreateUser").
			Str("username", username).Msg("failed to insert user")
		return models.User{}, fmt.Errorf("insert user: %w", scanErr)
	}

	return user, nil
}

func (r *sqlRemoteLibrary) findUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByName, username)
	if err := row.Scan(&user.ID, &user.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user by name: %w", err)
	}
	return user, nil
}

// ListContent implements [RemoteLibrary].
func (r *sqlRemoteLibrary) ListContent(ctx context.Context) ([]models.Content, error) {
	query, args, err := buildListContentQuery()
	if err != nil {
		return nil, fmt.Errorf("build list content query: %w", err)
	}
	return r.queryContent(ctx, query, args...)
}

// SearchContent implements [RemoteLibrary].
func (r *sqlRemoteLibrary) SearchContent(ctx context.Context, keyword string) ([]models.Content, error) {
	query, args, err := buildSearchContentQuery(keyword)
	if err != nil {
		return nil, fmt.Errorf("build search content query: %w", err)
	}
	return r.queryContent(ctx, query, args...)
}

func (r *sqlRemoteLibrary) queryContent(ctx context.Context, query string, args ...any) ([]models.Content, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlRemoteLibrary.queryContent").Msg("failed to query contents")
		return nil, fmt.Errorf("query contents: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		content, scanErr := scanContent(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "sqlRemoteLibrary.queryContent").Msg("failed to scan content row")
			return nil, fmt.Errorf("scan content row: %w", scanErr)
		}
		items = append(items, content)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate content rows: %w", rowsErr)
	}
	return items, nil
}

func scanContent(rows *sql.Rows) (models.Content, error) {
	var (
		content models.Content
		addedAt sql.NullTime
		author  sql.NullString
		categ   sql.NullString
		tags    sql.NullString
		descr   sql.NullString
	)

	err := rows.Scan(
		&content.ID,
		&content.Title,
		&content.FilePath,
		&content.FileType,
		&content.SizeBytes,
		&addedAt,
		&author,
		&categ,
		&tags,
		&descr,
	)
	if err != nil {
		return models.Content{}, err
	}

	if addedAt.Valid {
		t := addedAt.Time
		content.AddedAt = &t
	}
	content.Author = nullableString(author)
	content.Category = nullableString(categ)
	content.Description = nullableString(descr)
	if tags.Valid {
		content.Tags = models.ParseTags(tags.String)
	}

	return content, nil
}

// InsertContent implements [RemoteLibrary]. The added-at timestamp is
// assigned here when the caller did not set one.
func (r *sqlRemoteLibrary) InsertContent(ctx context.Context, content models.Content) (models.Content, error) {
	log := logger.FromContext(ctx)

	if content.AddedAt == nil {
		now := time.Now()
		content.AddedAt = &now
	}

	var tags any
	if len(content.Tags) > 0 {
		tags = strings.Join(content.Tags, ", ")
	}

	row := r.db.QueryRowContext(ctx, insertContent,
		content.Title,
		content.FilePath,
		content.FileType,
		content.SizeBytes,
		*content.AddedAt,
		nullableArg(content.Author),
		nullableArg(content.Category),
		tags,
		nullableArg(content.Description),
	)
	if err := row.Scan(&content.ID); err != nil {
		log.Err(err).Str("func", "sqlRemoteLibrary.InsertContent").
			Str("title", content.Title).Msg("failed to insert content")
		return models.Content{}, fmt.Errorf("insert content: %w", err)
	}

	return content, nil
}

// ToggleFavourite implements [RemoteLibrary]. The check and the
// insert/delete run in one transaction so two rapid toggles cannot leave a
// duplicate pair behind.
func (r *sqlRemoteLibrary) ToggleFavourite(ctx context.Context, userID, contentID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin toggle favourite tx: %w", err)
	}
	defer tx.Rollback()

	var favouriteID int64
	err = tx.QueryRowContext(ctx, findFavourite, userID, contentID).Scan(&favouriteID)
	switch {
	case err == nil:
		if _, err = tx.ExecContext(ctx, deleteFavourite, favouriteID); err != nil {
			log.Err(err).Str("func", "sqlRemoteLibrary.ToggleFavourite").
				Int64("user_id", userID).Int64("content_id", contentID).
				Msg("failed to delete favourite")
			return false, fmt.Errorf("delete favourite: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("commit toggle favourite: %w", err)
		}
		return false, nil

	case errors.Is(err, sql.ErrNoRows):
		var addedAt time.Time
		row := tx.QueryRowContext(ctx, insertFavourite, userID, contentID, time.Now())
		if err = row.Scan(&favouriteID, &addedAt); err != nil {
			log.Err(err).Str("func", "sqlRemoteLibrary.ToggleFavourite").
				Int64("user_id", userID).Int64("content_id", contentID).
				Msg("failed to insert favourite")
			return false, fmt.Errorf("insert favourite: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("commit toggle favourite: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("find favourite: %w", err)
	}
}

// ListFavourites implements [RemoteLibrary].
func (r *sqlRemoteLibrary) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavouritesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "sqlRemoteLibrary.ListFavourites").
			Int64("user_id", userID).Msg("failed to query favourites")
		return nil, fmt.Errorf("query favourites: %w", err)
	}
	defer rows.Close()

	var items []models.Favourite
	for rows.Next() {
		var f models.Favourite
		if scanErr := rows.Scan(&f.ID, &f.UserID, &f.ContentID, &f.AddedAt); scanErr != nil {
			return nil, fmt.Errorf("scan favourite row: %w", scanErr)
		}
		items = append(items, f)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate favourite rows: %w", rowsErr)
	}
	return items, nil
}

// UpsertHistory implements [RemoteLibrary]. The check and the write share a
// transaction, keeping at most one record per (user, content) pair.
func (r *sqlRemoteLibrary) UpsertHistory(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	if record.PageNumber < 1 {
		return models.HistoryRecord{}, ErrInvalidPageNumber
	}

	record.LastReadAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("begin upsert history tx: %w", err)
	}
	defer tx.Rollback()

	var historyID int64
	err = tx.QueryRowContext(ctx, findHistoryID, record.UserID, record.ContentID).Scan(&historyID)
	switch {
	case err == nil:
		if _, err = tx.ExecContext(ctx, updateHistory, record.LastReadAt, record.PageNumber, historyID); err != nil {
			log.Err(err).Str("func", "sqlRemoteLibrary.UpsertHistory").
				Int64("user_id", record.UserID).Int64("content_id", record.ContentID).
				Msg("failed to update history")
			return models.HistoryRecord{}, fmt.Errorf("update history: %w", err)
		}
		record.ID = historyID

	case errors.Is(err, sql.ErrNoRows):
		row := tx.QueryRowContext(ctx, insertHistory, record.UserID, record.ContentID, record.LastReadAt, record.PageNumber)
		if err = row.Scan(&record.ID); err != nil {
			log.Err(err).Str("func", "sqlRemoteLibrary.UpsertHistory").
				Int64("user_id", record.UserID).Int64("content_id", record.ContentID).
				Msg("failed to insert history")
			return models.HistoryRecord{}, fmt.Errorf("insert history: %w", err)
		}

	default:
		return models.HistoryRecord{}, fmt.Errorf("find history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.HistoryRecord{}, fmt.Errorf("commit upsert history: %w", err)
	}
	return record, nil
}

// ListHistory implements [RemoteLibrary].
func (r *sqlRemoteLibrary) ListHistory(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listHistoryByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "sqlRemoteLibrary.ListHistory").
			Int64("user_id", userID).Msg("failed to query history")
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var items []models.HistoryRecord
	for rows.Next() {
		var h models.HistoryRecord
		if scanErr := rows.Scan(&h.ID, &h.UserID, &h.ContentID, &h.LastReadAt, &h.PageNumber); scanErr != nil {
			return nil, fmt.Errorf("scan history row: %w", scanErr)
		}
		items = append(items, h)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate history rows: %w", rowsErr)
	}
	return items, nil
}

// Ping implements [RemoteLibrary].
func (r *sqlRemoteLibrary) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// isUniqueViolation classifies constraint errors for both supported
// dialects.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableArg(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
