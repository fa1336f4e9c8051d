package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"portfolio-api/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Generate builds the sitemap XML: one entry per top-level route plus one
// per post slug.
func Generate(siteURL string, posts []models.Post) ([]byte, error) {
	base := strings.TrimSuffix(siteURL, "/")
	now := time.Now().UTC().Format(time.RFC3339)

	set := urlSet{
		Xmlns: xmlns,
		URLs: []URL{
			{Loc: base + "/", LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
			{Loc: base + "/blog", LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
			{Loc: base + "/projects", LastMod: now, ChangeFreq: "weekly", Priority: "0.8"},
		},
	}

	for _, p := range posts {
		lastMod := now
		if t := p.Frontmatter.PublishedAt(); !t.IsZero() {
			lastMod = t.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, URL{
			Loc:        base + "/blog/" + p.Slug,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
