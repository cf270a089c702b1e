package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/orangeot/backoffice-api/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS", "GET", "PUT", "DELETE", "PATCH"},
		AllowHeaders: []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "backoffice-api",
		})
	})

	submissionHandler := handler.NewSubmissionHandler(deps)
	articleHandler := handler.NewArticleHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// POST /api/v1/applications - Submit a job application
		v1.POST("/applications", submissionHandler.SubmitApplication)

		// POST /api/v1/contact - Submit a contact form message
		v1.POST("/contact", submissionHandler.SubmitContact)

		articlesGroup := v1.Group("/articles")
		{
			// GET /api/v1/articles - List published articles
			articlesGroup.GET("", articleHandler.ListArticles)

			// GET /api/v1/articles/:article_id - Get one article
			articlesGroup.GET("/:article_id", articleHandler.GetArticle)
		}

		admin := v1.Group("/admin")
		admin.Use(RequireAdmin(deps.Verifier, deps.AdminEmail, deps.AdminLoginURL, deps.Logger))
		{
			// GET /api/v1/admin/articles - List all articles, drafts included
			admin.GET("/articles", articleHandler.ListAllArticles)

			// POST /api/v1/admin/articles - Create an article
			admin.POST("/articles", articleHandler.CreateArticle)

			// PUT /api/v1/admin/articles/:article_id - Update an article
			admin.PUT("/articles/:article_id", articleHandler.UpdateArticle)

			// DELETE /api/v1/admin/articles/:article_id - Delete an article
			admin.DELETE("/articles/:article_id", articleHandler.DeleteArticle)

			// POST /api/v1/admin/articles/images - Upload an article image
			admin.POST("/articles/images", articleHandler.UploadImage)
		}
	}

	return r
}
