package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-api/content"
	"portfolio-api/services"
)

// ListPostsHandler lists published posts with pagination, an optional
// category filter and a free-text query.
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		// pagination
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		// filters
		in.Category = c.Query("category")
		in.Query = c.Query("q")

		out, err := svc.List(in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListCategoriesHandler returns the distinct categories with post counts.
func ListCategoriesHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Categories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetPostHandler returns one post with rendered HTML and related posts.
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.Get(slug)
		if err != nil {
			if errors.Is(err, content.ErrPostNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
