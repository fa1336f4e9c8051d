package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/github"
	"portfolio-api/models"
)

func TestFetchReposSuccess(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "blog", "description": "my blog", "html_url": "https://github.com/u/blog", "language": "Go", "topics": ["web"], "fork": false, "updated_at": "2024-05-01T10:00:00Z"},
			{"id": 2, "name": "dotfiles", "description": null, "html_url": "https://github.com/u/dotfiles", "language": "Shell", "topics": [], "fork": false, "updated_at": "2024-04-01T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	client := github.NewClientWithBaseURL(srv.Client(), srv.URL)
	repos := client.FetchRepos(context.Background(), "someuser", 6)

	require.Len(t, repos, 2)
	assert.Equal(t, "/users/someuser/repos", gotPath)
	assert.Contains(t, gotQuery, "sort=pushed")
	assert.Contains(t, gotQuery, "per_page=6")
	assert.Equal(t, "blog", repos[0].Name)
	// JSON null description decodes to the empty string, never propagates.
	assert.Equal(t, "", repos[1].Description)
}

func TestFetchReposSendsBearerToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := github.NewClientWithBaseURL(srv.Client(), srv.URL)
	client.FetchRepos(context.Background(), "someuser", 6)

	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestFetchReposFailSoftOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	client := github.NewClientWithBaseURL(srv.Client(), srv.URL)
	repos := client.FetchRepos(context.Background(), "someuser", 6)

	assert.Empty(t, repos)
}

func TestFetchReposFailSoftOnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := github.NewClientWithBaseURL(nil, srv.URL)
	repos := client.FetchRepos(context.Background(), "someuser", 6)

	assert.Empty(t, repos)
}

func TestFetchReposFailSoftOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := github.NewClientWithBaseURL(srv.Client(), srv.URL)
	repos := client.FetchRepos(context.Background(), "someuser", 6)

	assert.Empty(t, repos)
}

func TestProjectsExcludesForksPreservingOrder(t *testing.T) {
	repos := []models.GitHubRepo{
		{ID: 1, Name: "first", Fork: false},
		{ID: 2, Name: "forked", Fork: true},
		{ID: 3, Name: "second", Fork: false},
	}

	projects := github.Projects(repos, "someuser")

	require.Len(t, projects, 2)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
}

func TestProjectsMapping(t *testing.T) {
	repos := []models.GitHubRepo{
		{
			ID:          7,
			Name:        "portfolio",
			Description: "personal site",
			HTMLURL:     "https://github.com/someuser/portfolio",
			Language:    "TypeScript",
			Topics:      []string{"nextjs", "", "blog"},
			UpdatedAt:   "2024-05-01T10:00:00Z",
		},
	}

	projects := github.Projects(repos, "someuser")

	require.Len(t, projects, 1)
	p := projects[0]
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "portfolio", p.Title)
	assert.Equal(t, "personal site", p.Description)
	assert.Equal(t, "https://github.com/someuser/portfolio", p.Link)
	assert.Equal(t, "https://opengraph.githubassets.com/1/someuser/portfolio", p.Image)
	assert.Equal(t, []string{"TypeScript", "nextjs", "blog"}, p.Technologies)
	assert.Equal(t, "2024-05-01", p.Date)
}

func TestProjectsNoLanguage(t *testing.T) {
	repos := []models.GitHubRepo{{ID: 1, Name: "docs", Topics: []string{"wiki"}}}

	projects := github.Projects(repos, "someuser")

	require.Len(t, projects, 1)
	assert.Equal(t, []string{"wiki"}, projects[0].Technologies)
}
