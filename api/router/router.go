package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio-api/api/handlers"
	"portfolio-api/api/middleware"
	"portfolio-api/config"
	"portfolio-api/content"
	"portfolio-api/db"
	"portfolio-api/github"
	"portfolio-api/repositories"
	"portfolio-api/services"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cfg := config.GetConfig()
	lib := content.NewLibrary(config.ContentDir())

	r.GET("/sitemap.xml", handlers.SitemapHandler(lib, cfg.Site.URL))
	r.GET("/feed.xml", handlers.FeedHandler(lib, cfg.Site))

	// v1 routes
	api := r.Group("/api/v1")
	{
		postSvc := services.NewPostService(lib)
		commentSvc := services.NewCommentService(repositories.NewCommentRepository(db.Database()))
		projectSvc := services.NewProjectService(github.NewClient(), cfg.GitHub.Username, cfg.GitHub.ProjectLimit)

		api.GET("/posts", handlers.ListPostsHandler(postSvc))
		api.GET("/posts/:slug", handlers.GetPostHandler(postSvc))
		api.GET("/categories", handlers.ListCategoriesHandler(postSvc))
		api.GET("/projects", handlers.ListProjectsHandler(projectSvc))
		api.GET("/comments", handlers.ListCommentsHandler(commentSvc))
		api.POST("/comments", handlers.CreateCommentHandler(commentSvc))
	}

	return r
}
