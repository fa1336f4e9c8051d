package services

import (
	"strings"

	"portfolio-api/content"
	"portfolio-api/dto"
	"portfolio-api/renderer"
)

// PostService encapsulates listing, searching and detail loading for posts.
type PostService struct {
	lib *content.Library
}

func NewPostService(lib *content.Library) *PostService {
	return &PostService{lib: lib}
}

type ListPostsInput struct {
	Page     int
	PageSize int
	Category string
	Query    string
}

// List returns a page of posts filtered by category and free-text query.
// The query matches title, excerpt and tags, case-insensitively.
func (s *PostService) List(in ListPostsInput) (*dto.PostListDTO, error) {
	posts, err := s.lib.All()
	if err != nil {
		return nil, err
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	filtered := make([]dto.PostDTO, 0, len(posts))
	query := strings.ToLower(strings.TrimSpace(in.Query))
	for _, p := range posts {
		if in.Category != "" && p.Frontmatter.Category != in.Category {
			continue
		}
		if query != "" && !matchesQuery(p.Frontmatter.Title, p.Excerpt, p.Frontmatter.Tags, query) {
			continue
		}
		filtered = append(filtered, dto.NewPostDTO(p))
	}

	total := len(filtered)
	start := (in.Page - 1) * in.PageSize
	if start > total {
		start = total
	}
	end := start + in.PageSize
	if end > total {
		end = total
	}

	return &dto.PostListDTO{
		Items:    filtered[start:end],
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}

func matchesQuery(title, excerpt string, tags []string, query string) bool {
	if strings.Contains(strings.ToLower(title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(excerpt), query) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories of publishable posts with
// their post counts, ordered by first appearance in the index.
func (s *PostService) Categories() ([]dto.CategoryCountDTO, error) {
	posts, err := s.lib.All()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	var order []string
	for _, p := range posts {
		cat := p.Frontmatter.Category
		if cat == "" {
			continue
		}
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	out := make([]dto.CategoryCountDTO, 0, len(order))
	for _, cat := range order {
		out = append(out, dto.CategoryCountDTO{Category: cat, Count: counts[cat]})
	}
	return out, nil
}

// Get loads one post, renders its body to HTML and attaches related posts.
// Returns content.ErrPostNotFound for unknown slugs.
func (s *PostService) Get(slug string) (*dto.PostDetailDTO, error) {
	post, err := s.lib.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	html, err := renderer.RenderHTML(post.Content)
	if err != nil {
		return nil, err
	}

	all, err := s.lib.All()
	if err != nil {
		return nil, err
	}
	related := content.Related(*post, all, 0)
	relatedDTOs := make([]dto.PostDTO, 0, len(related))
	for _, r := range related {
		relatedDTOs = append(relatedDTOs, dto.NewPostDTO(r))
	}

	return &dto.PostDetailDTO{
		PostDTO: dto.NewPostDTO(*post),
		Content: post.Content,
		HTML:    html,
		Related: relatedDTOs,
	}, nil
}
