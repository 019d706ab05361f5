package sanitizer

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Sanitizer strips markup from user-supplied text fields and renders
// AI-generated markdown into safe HTML.
type Sanitizer struct {
	strict   *bluemonday.Policy
	ugc      *bluemonday.Policy
	markdown goldmark.Markdown
}

func New() *Sanitizer {
	return &Sanitizer{
		strict: bluemonday.StrictPolicy(),
		ugc:    bluemonday.UGCPolicy(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// SanitizeText removes all HTML from a plain-text field such as a ticket
// title or category name.
func (s *Sanitizer) SanitizeText(input string) string {
	cleaned := s.strict.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// RenderMarkdown converts markdown to HTML and filters the result with
// the UGC policy.
func (s *Sanitizer) RenderMarkdown(input string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return string(s.ugc.SanitizeBytes(buf.Bytes())), nil
}
