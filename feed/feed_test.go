package feed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/config"
	"portfolio-api/feed"
	"portfolio-api/models"
)

func TestGenerateRSS(t *testing.T) {
	site := config.SiteConfig{
		URL:         "https://example.com",
		Title:       "Example Blog",
		Description: "A blog",
	}
	posts := []models.Post{
		{
			Slug:        "hello",
			Excerpt:     "Intro...",
			Frontmatter: models.Frontmatter{Title: "Hello", Date: "2024-01-15"},
		},
	}

	rss, err := feed.Generate(site, posts)
	require.NoError(t, err)

	assert.Contains(t, rss, "<title>Example Blog</title>")
	assert.Contains(t, rss, "<title>Hello</title>")
	assert.Contains(t, rss, "https://example.com/blog/hello")
	assert.True(t, strings.Contains(rss, "<rss"))
}
