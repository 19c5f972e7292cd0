package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	findUserByName = `SELECT user_id, username
		FROM users
		WHERE LOWER(username) = LOWER($1);`

	insertUser = `INSERT INTO users (username)
		VALUES ($1)
		RETURNING user_id, username;`

	insertContent = `INSERT INTO contents (
			title,
			file_path,
			file_type,
			size_bytes,
			added_at,
			author,
			category,
			tags,
			description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING content_id;`

	findFavourite = `SELECT favourite_id
		FROM favourites
		WHERE user_id = $1 AND content_id = $2;`

	deleteFavourite = `DELETE FROM favourites
		WHERE favourite_id = $1;`

	insertFavourite = `INSERT INTO favourites (user_id, content_id, added_at)
		VALUES ($1, $2, $3)
		RETURNING favourite_id, added_at;`

	listFavouritesByUser = `SELECT favourite_id, user_id, content_id, added_at
		FROM favourites
		WHERE user_id = $1
		ORDER BY added_at DESC;`

	findHistoryID = `SELECT history_id
		FROM history
		WHERE user_id = $1 AND content_id = $2;`

	updateHistory = `UPDATE history
		SET last_read_at = $1, page_number = $2
		WHERE history_id = $3;`

	insertHistory = `INSERT INTO history (user_id, content_id, last_read_at, page_number)
		VALUES ($1, $2, $3, $4)
		RETURNING history_id;`

	listHistoryByUser = `SELECT history_id, user_id, content_id, last_read_at, page_number
		FROM history
		WHERE user_id = $1
		ORDER BY last_read_at DESC;`
)

// contentColumns is the select list shared by every content query.
var contentColumns = []string{
	"content_id",
	"title",
	"file_path",
	"file_type",
	"size_bytes",
	"added_at",
	"author",
	"category",
	"tags",
	"description",
}

// buildListContentQuery builds the full content listing, newest first with
// never-dated records last.
func buildListContentQuery() (string, []any, error) {
	return sq.Select(contentColumns...).
		From("contents").
		OrderBy("added_at DESC NULLS LAST").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSearchContentQuery builds a case-insensitive title substring search.
// An empty keyword degrades to the full listing, mirroring the behaviour of
// the local mirror.
func buildSearchContentQuery(keyword string) (string, []any, error) {
	builder := sq.Select(contentColumns...).
		From("contents").
		OrderBy("added_at DESC NULLS LAST").
		PlaceholderFormat(sq.Dollar)

	keyword = strings.TrimSpace(keyword)
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		builder = builder.Where(sq.Like{"LOWER(title)": pattern})
	}

	return builder.ToSql()
}
