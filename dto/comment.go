package dto

import (
	"time"

	"portfolio-api/models"
)

// CommentDTO mirrors the shape the site frontend expects: camelCase keys,
// hex string id.
type CommentDTO struct {
	ID        string    `json:"id"`
	PostSlug  string    `json:"postSlug"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCommentDTO(c models.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID.Hex(),
		PostSlug:  c.PostSlug,
		Name:      c.Name,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// CreateCommentInput is the POST /comments request body.
type CreateCommentInput struct {
	PostSlug string `json:"postSlug"`
	Name     string `json:"name"`
	Content  string `json:"content"`
}
