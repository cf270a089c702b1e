package dto

// ArticleRequest is the body for creating or updating an article.
// Published defaults to true on create, matching the editor's
// publish-on-save behavior.
type ArticleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url"`
	Published   *bool   `json:"published"`
}

// ArticleDTO is one article in a response
type ArticleDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	Published   bool    `json:"published"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListArticlesResponse wraps an article listing
type ListArticlesResponse struct {
	Articles []ArticleDTO `json:"articles"`
}

// ImageUploadResponse returns the public URL of an uploaded image
type ImageUploadResponse struct {
	URL string `json:"url"`
}
