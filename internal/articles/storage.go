package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/orangeot/backoffice-api/shared/postgresql"
)

// Storage handles all database operations for articles
type Storage struct {
	db *sqlx.DB
}

// NewStorage creates an article storage over the shared client
func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

func (s *Storage) CreateArticle(ctx context.Context, article *Article) error {
	query := `
		INSERT INTO articles (
			id, title, description, image_url,
			published, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		article.ID,
		article.Title,
		article.Description,
		article.ImageURL,
		article.Published,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (s *Storage) GetArticleByID(ctx context.Context, articleID string) (*Article, error) {
	var article Article
	query := `
		SELECT
			id, title, description, image_url,
			published, created_at, updated_at
		FROM articles
		WHERE id = $1
	`

	err := s.db.GetContext(ctx, &article, query, articleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &article, nil
}

// UpdateArticle overwrites title, description, image and published
// flag. Last write wins; there is no version column.
func (s *Storage) UpdateArticle(ctx context.Context, article *Article) error {
	query := `
		UPDATE articles
		SET title = $2, description = $3, image_url = $4,
		    published = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		article.ID,
		article.Title,
		article.Description,
		article.ImageURL,
		article.Published,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrArticleNotFound
	}

	return nil
}

func (s *Storage) DeleteArticle(ctx context.Context, articleID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// ListArticles returns articles newest first. With onlyPublished set
// it serves the public employees-corner page; without it, the admin
// panel sees drafts too.
func (s *Storage) ListArticles(ctx context.Context, onlyPublished bool) ([]Article, error) {
	query := `
		SELECT
			id, title, description, image_url,
			published, created_at, updated_at
		FROM articles
	`

	if onlyPublished {
		query += " WHERE published = true"
	}

	query += " ORDER BY created_at DESC"

	var list []Article
	err := s.db.SelectContext(ctx, &list, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	return list, nil
}
