package models

import (
	"strings"
	"time"
)

// BlogPost represents a blog post document stored as blog/<slug>.json
type BlogPost struct {
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Date     string         `json:"date"`
	Author   string         `json:"author"`
	Excerpt  string         `json:"excerpt"`
	Content  []ContentBlock `json:"content"`
	Image    string         `json:"image"`
	Tags     []string       `json:"tags"`
	Category string         `json:"category"`
}

// dateLayouts are the date formats accepted in content files, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a content date string
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PublishedAt returns the parsed post date
func (p *BlogPost) PublishedAt() (time.Time, bool) {
	return ParseDate(p.Date)
}

// HasTag reports whether the post carries tag, ignoring case
func (p *BlogPost) HasTag(tag string) bool {
	want := Fold(tag)
	for _, t := range p.Tags {
		if Fold(t) == want {
			return true
		}
	}
	return false
}

// InCategory reports whether the post's category equals name, ignoring case
func (p *BlogPost) InCategory(name string) bool {
	return Fold(p.Category) == Fold(name)
}
