package models

import "time"

// HistoryRecord stores the latest reading position of a user within a piece
// of content. It is a "latest position" record, not an event log: at most
// one record exists per (UserID, ContentID) pair and saving progress again
// updates it in place.
type HistoryRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ContentID  int64     `json:"content_id"`
	LastReadAt time.Time `json:"last_read_at"`

	// PageNumber is the last page the user read, always >= 1.
	PageNumber int `json:"page_number"`
}

// Clone returns an independent copy of the record.
func (h HistoryRecord) Clone() HistoryRecord {
	return h
}
