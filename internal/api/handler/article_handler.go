package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orangeot/backoffice-api/internal/api/dto"
	"github.com/orangeot/backoffice-api/internal/articles"
)

// maxImageBytes caps article image uploads at 10 MB.
const maxImageBytes = 10 * 1024 * 1024

// ListArticles handles GET /api/v1/articles
// Public listing: only published articles, newest first.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	h.logger.Info("ListArticles called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	h.listArticles(c, true)
}

// ListAllArticles handles GET /api/v1/admin/articles
// Admin listing: drafts included.
func (h *ArticleHandler) ListAllArticles(c *gin.Context) {
	h.logger.Info("ListAllArticles called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	h.listArticles(c, false)
}

func (h *ArticleHandler) listArticles(c *gin.Context, onlyPublished bool) {
	list, err := h.storage.ListArticles(c.Request.Context(), onlyPublished)
	if err != nil {
		h.logger.Error("Failed to list articles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list articles",
		})
		return
	}

	resp := dto.ListArticlesResponse{
		Articles: make([]dto.ArticleDTO, 0, len(list)),
	}
	for i := range list {
		resp.Articles = append(resp.Articles, toArticleDTO(&list[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetArticle handles GET /api/v1/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID := c.Param("article_id")

	h.logger.Info("GetArticle called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("article_id", articleID),
	)

	if _, err := uuid.Parse(articleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "article_id must be a valid UUID",
		})
		return
	}

	article, err := h.storage.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, articles.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Article not found",
			})
			return
		}
		h.logger.Error("Failed to get article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get article",
		})
		return
	}

	c.JSON(http.StatusOK, toArticleDTO(article))
}

// CreateArticle handles POST /api/v1/admin/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	h.logger.Info("CreateArticle called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := time.Now().UTC()
	article := articles.Article{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.storage.CreateArticle(c.Request.Context(), &article); err != nil {
		h.logger.Error("Failed to create article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create article",
		})
		return
	}

	c.JSON(http.StatusCreated, toArticleDTO(&article))
}

// UpdateArticle handles PUT /api/v1/admin/articles/:article_id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID := c.Param("article_id")

	h.logger.Info("UpdateArticle called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("article_id", articleID),
	)

	if _, err := uuid.Parse(articleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "article_id must be a valid UUID",
		})
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	existing, err := h.storage.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, articles.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Article not found",
			})
			return
		}
		h.logger.Error("Failed to get article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update article",
		})
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL
	if req.Published != nil {
		existing.Published = *req.Published
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := h.storage.UpdateArticle(c.Request.Context(), existing); err != nil {
		if errors.Is(err, articles.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Article not found",
			})
			return
		}
		h.logger.Error("Failed to update article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update article",
		})
		return
	}

	c.JSON(http.StatusOK, toArticleDTO(existing))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:article_id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID := c.Param("article_id")

	h.logger.Info("DeleteArticle called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("article_id", articleID),
	)

	if _, err := uuid.Parse(articleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "article_id must be a valid UUID",
		})
		return
	}

	if err := h.storage.DeleteArticle(c.Request.Context(), articleID); err != nil {
		if errors.Is(err, articles.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Article not found",
			})
			return
		}
		h.logger.Error("Failed to delete article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete article",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /api/v1/admin/articles/images
// Stores the image and returns its public URL for use in an article.
func (h *ArticleHandler) UploadImage(c *gin.Context) {
	h.logger.Info("UploadImage called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image file is required",
		})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image exceeds the 10 MB limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open image upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image file is required",
		})
		return
	}
	defer file.Close()

	key := "articles/" + uuid.New().String() + path.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.files.Put(c.Request.Context(), key, contentType, io.LimitReader(file, maxImageBytes))
	if err != nil {
		h.logger.Error("Failed to store image",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store image",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ImageUploadResponse{URL: url})
}

func toArticleDTO(a *articles.Article) dto.ArticleDTO {
	return dto.ArticleDTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}
