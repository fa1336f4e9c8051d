package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/config"
	"portfolio-api/content"
	"portfolio-api/feed"
	"portfolio-api/sitemap"
)

// SitemapHandler serves the sitemap built from the current content index.
func SitemapHandler(lib *content.Library, siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := lib.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out, err := sitemap.Generate(siteURL, posts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/xml; charset=utf-8", out)
	}
}

// FeedHandler serves the RSS feed of published posts.
func FeedHandler(lib *content.Library, site config.SiteConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := lib.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		rss, err := feed.Generate(site, posts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
	}
}
