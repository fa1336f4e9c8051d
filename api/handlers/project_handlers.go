package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/services"
)

// ListProjectsHandler returns the GitHub-backed project list. The fetcher
// is fail-soft, so this always answers 200 with a possibly empty array.
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List(c.Request.Context()))
	}
}
