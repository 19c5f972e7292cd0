package models

import "time"

// Favourite links a user to a piece of content they marked. At most one
// favourite exists per (UserID, ContentID) pair; toggling an existing pair
// removes the record instead of inserting a second one.
type Favourite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ContentID int64     `json:"content_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Clone returns an independent copy of the favourite.
func (f Favourite) Clone() Favourite {
	return f
}
