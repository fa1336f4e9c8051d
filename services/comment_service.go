package services

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/dto"
	"portfolio-api/models"
	"portfolio-api/repositories"
)

// ErrMissingFields signals a create request without all required fields.
var ErrMissingFields = errors.New("missing required fields")

type CommentService struct {
	repo *repositories.CommentRepository
}

func NewCommentService(repo *repositories.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// List returns the comments for a post, newest first.
func (s *CommentService) List(ctx context.Context, postSlug string) ([]dto.CommentDTO, error) {
	comments, err := s.repo.ListByPostSlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.NewCommentDTO(c))
	}
	return out, nil
}

// Create validates and stores a comment, returning the created record.
func (s *CommentService) Create(ctx context.Context, in dto.CreateCommentInput) (*dto.CommentDTO, error) {
	if strings.TrimSpace(in.PostSlug) == "" ||
		strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Content) == "" {
		return nil, ErrMissingFields
	}

	comment := &models.Comment{
		PostSlug: in.PostSlug,
		Name:     in.Name,
		Content:  in.Content,
	}
	if err := s.repo.Insert(ctx, comment); err != nil {
		return nil, err
	}
	created := dto.NewCommentDTO(*comment)
	return &created, nil
}
