package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/orangeot/backoffice-api/internal/articles"
	"github.com/orangeot/backoffice-api/internal/auth"
	"github.com/orangeot/backoffice-api/internal/careers"
)

// FileStore stores a blob and returns its public URL. Satisfied by
// *filestore.Store.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ArticleStore is the persistence surface the article handlers need.
// Satisfied by *articles.Storage.
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *articles.Article) error
	GetArticleByID(ctx context.Context, articleID string) (*articles.Article, error)
	UpdateArticle(ctx context.Context, article *articles.Article) error
	DeleteArticle(ctx context.Context, articleID string) error
	ListArticles(ctx context.Context, onlyPublished bool) ([]articles.Article, error)
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger         *slog.Logger
	Careers        *careers.Service
	Articles       ArticleStore
	Files          FileStore
	Verifier       auth.Verifier
	AdminEmail     string
	AdminLoginURL  string
	MaxResumeBytes int64
}

// SubmissionHandler handles application and contact submissions
type SubmissionHandler struct {
	logger         *slog.Logger
	service        *careers.Service
	maxResumeBytes int64
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(deps *Dependencies) *SubmissionHandler {
	maxBytes := deps.MaxResumeBytes
	if maxBytes <= 0 {
		maxBytes = careers.DefaultMaxResumeBytes
	}
	return &SubmissionHandler{
		logger:         deps.Logger,
		service:        deps.Careers,
		maxResumeBytes: maxBytes,
	}
}

// ArticleHandler handles article CRUD and image uploads
type ArticleHandler struct {
	logger  *slog.Logger
	storage ArticleStore
	files   FileStore
}

// NewArticleHandler creates a new ArticleHandler instance
func NewArticleHandler(deps *Dependencies) *ArticleHandler {
	return &ArticleHandler{
		logger:  deps.Logger,
		storage: deps.Articles,
		files:   deps.Files,
	}
}
