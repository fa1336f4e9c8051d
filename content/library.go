package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"portfolio-api/internal/logger"
	"portfolio-api/models"
	"portfolio-api/parser"
)

// ErrPostNotFound is returned when a slug has no readable content file.
var ErrPostNotFound = errors.New("post not found")

const excerptLength = 150

var contentExtensions = []string{".mdx", ".md"}

// Library reads blog posts from a content directory. Posts are loaded fresh
// from disk on every call; there is no cache to invalidate.
type Library struct {
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// ListSlugs enumerates the slugs of all content files in the directory.
func (l *Library) ListSlugs() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("content directory %s: %w", l.dir, err)
	}

	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		for _, allowed := range contentExtensions {
			if ext == allowed {
				slugs = append(slugs, strings.TrimSuffix(name, filepath.Ext(name)))
				break
			}
		}
	}
	return slugs, nil
}

// GetBySlug loads and parses a single post. Missing or unparseable files
// surface as ErrPostNotFound so callers can map them to a missing page.
func (l *Library) GetBySlug(slug string) (*models.Post, error) {
	data, err := l.readFile(slug)
	if err != nil {
		return nil, err
	}

	var fm models.Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPostNotFound, slug, err)
	}

	// No explicit thumbnail: fall back to the first image embedded in the body.
	if fm.Thumbnail == "" {
		fm.Thumbnail = parser.FirstImageURL(string(body))
	}

	return &models.Post{
		Slug:        slug,
		Frontmatter: fm,
		Content:     string(body),
		Excerpt:     makeExcerpt(fm.Description, string(body)),
	}, nil
}

func (l *Library) readFile(slug string) ([]byte, error) {
	for _, ext := range contentExtensions {
		data, err := os.ReadFile(filepath.Join(l.dir, slug+ext))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrPostNotFound, slug, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
}

// makeExcerpt prefers the frontmatter description and falls back to the
// first excerptLength characters of the raw body. Always ends with "...".
func makeExcerpt(description, body string) string {
	if description != "" {
		return description + "..."
	}
	runes := []rune(body)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

// All returns every publishable post, newest first. Corrupt files are
// skipped with a warning rather than failing the whole index.
func (l *Library) All() ([]models.Post, error) {
	slugs, err := l.ListSlugs()
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(slugs))
	for _, slug := range slugs {
		post, err := l.GetBySlug(slug)
		if err != nil {
			logger.Log.Warnf("skipping unreadable post %s: %v", slug, err)
			continue
		}
		if post.Frontmatter.Draft {
			continue
		}
		posts = append(posts, *post)
	}

	// Stable sort keeps enumeration order for posts sharing a date.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Frontmatter.PublishedAt().After(posts[j].Frontmatter.PublishedAt())
	})
	return posts, nil
}
