package models

import (
	"path/filepath"
	"strings"
	"time"
)

// DefaultCategory is assigned to content whose category is blank.
const DefaultCategory = "Uncategorized"

// Content represents a single library item: a book, comic, image or plain
// text document. Only metadata is stored here; the file itself stays on
// disk at FilePath and is rendered by an external collaborator.
type Content struct {
	// ID is the unique identifier of the content. Positive values come
	// from the remote store, negative values are local-only allocations.
	ID int64 `json:"id"`

	Title     string     `json:"title"`
	FilePath  string     `json:"file_path"`
	FileType  string     `json:"file_type"`
	SizeBytes int64      `json:"size_bytes"`
	AddedAt   *time.Time `json:"added_at,omitempty"`

	Author      *string  `json:"author,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description *string  `json:"description,omitempty"`

	// Favourite is a derived, per-user projection set by the service layer
	// when listing content. It is never persisted with the entity.
	Favourite bool `json:"-"`
}

// NewContentFromFile builds a Content value from file metadata. The title
// falls back to the file name when blank, the file type is derived from the
// extension, and a blank category resolves to DefaultCategory.
func NewContentFromFile(path, title, category string, sizeBytes int64) Content {
	name := filepath.Base(path)
	if title = strings.TrimSpace(title); title == "" {
		title = name
	}

	fileType := strings.TrimPrefix(filepath.Ext(name), ".")
	fileType = strings.ToUpper(fileType)

	now := time.Now()
	cat := NormalizeCategory(category)
	return Content{
		Title:     title,
		FilePath:  path,
		FileType:  fileType,
		SizeBytes: sizeBytes,
		AddedAt:   &now,
		Category:  &cat,
	}
}

// Clone returns a deep copy of the content, so callers mutating the result
// cannot alias store-internal state.
func (c Content) Clone() Content {
	clone := c
	if c.AddedAt != nil {
		t := *c.AddedAt
		clone.AddedAt = &t
	}
	clone.Author = cloneStringPtr(c.Author)
	clone.Category = cloneStringPtr(c.Category)
	clone.Description = cloneStringPtr(c.Description)
	if c.Tags != nil {
		clone.Tags = append([]string(nil), c.Tags...)
	}
	return clone
}

// SetTags replaces the content's tags with the normalised form of raw:
// trimmed, empty entries dropped, duplicates removed case-insensitively
// while preserving order and original casing.
func (c *Content) SetTags(raw []string) {
	c.Tags = NormalizeTags(raw)
}

// NormalizeCategory trims category and substitutes DefaultCategory when the
// result is blank.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// NormalizeTags returns raw trimmed and de-duplicated (case-insensitive)
// with original order and casing preserved. Returns nil when nothing is left.
func NormalizeTags(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}

// ParseTags splits a comma-separated tag string and normalises the result.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(raw, ","))
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
