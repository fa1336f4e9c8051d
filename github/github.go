package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"portfolio-api/internal/logger"
	"portfolio-api/models"
)

const defaultBaseURL = "https://api.github.com"
const defaultTimeout = 10 * time.Second

// Client lists a user's repositories from the GitHub REST API.
// A GITHUB_TOKEN environment variable, when present, is attached as a
// bearer credential to raise the rate limit.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// FetchRepos returns up to limit repositories for username, most recently
// pushed first. Fail-soft: any network or API error is logged and an empty
// slice is returned, so callers render "no projects" instead of an error
// page. An empty result is indistinguishable from an empty account.
func (c *Client) FetchRepos(ctx context.Context, username string, limit int) []models.GitHubRepo {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Log.Errorf("github: build request for %s: %v", username, err)
		return nil
	}

	q := req.URL.Query()
	q.Set("sort", "pushed")
	q.Set("per_page", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorf("github: fetch repos for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorf("github: fetch repos for %s: status %d", username, resp.StatusCode)
		return nil
	}

	var repos []models.GitHubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		logger.Log.Errorf("github: decode repos for %s: %v", username, err)
		return nil
	}
	return repos
}

// Projects maps fetched repositories into display records. Forks are
// dropped; everything else keeps its API order. Pure function.
func Projects(repos []models.GitHubRepo, username string) []models.Project {
	projects := make([]models.Project, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			continue
		}

		techs := make([]string, 0, len(repo.Topics)+1)
		if repo.Language != "" {
			techs = append(techs, repo.Language)
		}
		for _, topic := range repo.Topics {
			if topic != "" {
				techs = append(techs, topic)
			}
		}

		projects = append(projects, models.Project{
			ID:          repo.ID,
			Title:       repo.Name,
			Description: repo.Description,
			Link:        repo.HTMLURL,
			// GitHub's Open Graph service renders a preview card per repo.
			Image:        fmt.Sprintf("https://opengraph.githubassets.com/1/%s/%s", username, repo.Name),
			Technologies: techs,
			Date:         datePortion(repo.UpdatedAt),
		})
	}
	return projects
}

// datePortion truncates an RFC3339 timestamp to its date part.
func datePortion(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
