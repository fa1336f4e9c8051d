package dto

import (
	"portfolio-api/models"
)

// PostDTO is the list-item shape for blog posts. The raw body is omitted;
// list pages only need metadata plus the excerpt.
type PostDTO struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Excerpt   string   `json:"excerpt"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		Slug:      p.Slug,
		Title:     p.Frontmatter.Title,
		Date:      p.Frontmatter.Date,
		Category:  p.Frontmatter.Category,
		Tags:      p.Frontmatter.Tags,
		Thumbnail: p.Frontmatter.Thumbnail,
		Excerpt:   p.Excerpt,
	}
}

// PostDetailDTO adds the body (raw markdown and rendered HTML) and the
// related-post suggestions to the list-item shape.
type PostDetailDTO struct {
	PostDTO
	Content string    `json:"content"`
	HTML    string    `json:"html"`
	Related []PostDTO `json:"related"`
}

// PostListDTO wraps a page of posts with pagination totals.
type PostListDTO struct {
	Items    []PostDTO `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// CategoryCountDTO is one entry of the category filter sidebar.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
