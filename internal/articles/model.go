package articles

import (
	"errors"
	"time"
)

// ErrArticleNotFound is returned when an article id matches no row
var ErrArticleNotFound = errors.New("article not found")

// Article is one row of the articles relation. The table is the sole
// source of truth; nothing is cached beyond the list a handler just
// fetched. Concurrent edits resolve last-write-wins.
type Article struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageURL    *string   `db:"image_url"`
	Published   bool      `db:"published"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
