package models

import "strings"

// ContentQuery describes the filters applied when listing content for the
// library view: a keyword matched against titles, an exact category, and a
// set of tags that must all be present.
type ContentQuery struct {
	Keyword  string
	Category string
	Tags     []string
}

// NewContentQuery builds a normalised query: keyword and category are
// trimmed, tags are lower-cased and de-duplicated.
func NewContentQuery(keyword, category string, tags []string) ContentQuery {
	q := ContentQuery{
		Keyword:  strings.TrimSpace(keyword),
		Category: strings.TrimSpace(category),
	}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || contains(q.Tags, tag) {
			continue
		}
		q.Tags = append(q.Tags, tag)
	}
	return q
}

// HasKeyword reports whether a keyword filter is set.
func (q ContentQuery) HasKeyword() bool { return q.Keyword != "" }

// HasCategory reports whether a category filter is set.
func (q ContentQuery) HasCategory() bool { return q.Category != "" }

// HasTags reports whether any tag filters are set.
func (q ContentQuery) HasTags() bool { return len(q.Tags) > 0 }

// IsEmpty reports whether the query has no filters at all.
func (q ContentQuery) IsEmpty() bool {
	return !q.HasKeyword() && !q.HasCategory() && !q.HasTags()
}

// Matches reports whether content passes every filter of the query.
// Keyword matching is a case-insensitive substring test on the title,
// category matching is case-insensitive equality, and every query tag must
// be present among the content's tags.
func (q ContentQuery) Matches(c Content) bool {
	if q.HasKeyword() && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(q.Keyword)) {
		return false
	}

	if q.HasCategory() {
		if c.Category == nil || !strings.EqualFold(*c.Category, q.Category) {
			return false
		}
	}

	for _, want := range q.Tags {
		found := false
		for _, tag := range c.Tags {
			if strings.EqualFold(tag, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
