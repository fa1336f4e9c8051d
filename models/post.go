package models

import "time"

// Frontmatter is the metadata header of a content file.
// Date stays a string here (the on-disk form); use PublishedAt for comparisons.
type Frontmatter struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Date        string   `yaml:"date" json:"date"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags" json:"tags"`
	Thumbnail   string   `yaml:"thumbnail" json:"thumbnail,omitempty"`
	Draft       bool     `yaml:"draft" json:"draft,omitempty"`
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PublishedAt parses the frontmatter date. Returns the zero time when the
// date is absent or not in a supported format.
func (f Frontmatter) PublishedAt() time.Time {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, f.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Post is one content file, loaded fresh from disk on every request.
type Post struct {
	Slug        string      `json:"slug"`
	Frontmatter Frontmatter `json:"frontmatter"`
	Content     string      `json:"content"`
	Excerpt     string      `json:"excerpt"`
}
