package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/dto"
	"portfolio-api/services"
)

// ListCommentsHandler returns the comments for a post, newest first.
// postSlug is required.
func ListCommentsHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		postSlug := c.Query("postSlug")
		if postSlug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postSlug"})
			return
		}

		comments, err := svc.List(c.Request.Context(), postSlug)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// CreateCommentHandler stores a new comment and echoes the created record.
func CreateCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CreateCommentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
