package parser

import (
	"regexp"
	"strings"
)

var (
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeRe     = regexp.MustCompile("(?s)```.*?```")
	emphasisRe = regexp.MustCompile("[*_~`]")
	headingRe  = regexp.MustCompile(`#{1,6}\s`)
	quoteRe    = regexp.MustCompile(`(?:^|\n)>[^\n]*`)
	imageRe    = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
)

// StripMarkdown reduces markdown source to a single-line plain text preview.
// Fenced code blocks are dropped before inline markers so the fence
// delimiters still exist when the block pattern runs. Idempotent.
func StripMarkdown(markdown string) string {
	s := linkRe.ReplaceAllString(markdown, "$1")
	s = codeRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// FirstImageURL returns the URL of the first markdown image reference in the
// body, or "" when the body embeds no image. Used as the thumbnail fallback.
func FirstImageURL(markdown string) string {
	m := imageRe.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return m[1]
}
