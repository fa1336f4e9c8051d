package feed

import (
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"portfolio-api/config"
	"portfolio-api/models"
)

// Generate renders the published posts as an RSS feed.
func Generate(site config.SiteConfig, posts []models.Post) (string, error) {
	base := strings.TrimSuffix(site.URL, "/")

	f := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: base + "/"},
		Description: site.Description,
		Created:     time.Now(),
	}

	for _, p := range posts {
		f.Items = append(f.Items, &feeds.Item{
			Id:          base + "/blog/" + p.Slug,
			Title:       p.Frontmatter.Title,
			Link:        &feeds.Link{Href: base + "/blog/" + p.Slug},
			Description: p.Excerpt,
			Created:     p.Frontmatter.PublishedAt(),
		})
	}

	return f.ToRss()
}
