package models

// GitHubRepo mirrors the fields we consume from the GitHub repository
// listing API. Unknown fields are ignored on decode.
type GitHubRepo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Fork        bool     `json:"fork"`
	UpdatedAt   string   `json:"updated_at"`
}

// Project is the display-ready shape a GitHubRepo is mapped into.
type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Date         string   `json:"date"`
}
