package services

import (
	"context"

	"portfolio-api/github"
	"portfolio-api/models"
)

// ProjectService exposes the GitHub-backed project listing.
type ProjectService struct {
	client   *github.Client
	username string
	limit    int
}

func NewProjectService(client *github.Client, username string, limit int) *ProjectService {
	return &ProjectService{client: client, username: username, limit: limit}
}

// List fetches the account's repositories and maps them into projects.
// Inherits the fetcher's fail-soft behavior: an API failure yields an
// empty list, never an error.
func (s *ProjectService) List(ctx context.Context) []models.Project {
	repos := s.client.FetchRepos(ctx, s.username, s.limit)
	return github.Projects(repos, s.username)
}
