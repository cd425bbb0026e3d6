package application

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownRenderer converts a post's markdown-like content to HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GoldmarkRenderer renders post content with goldmark. Post content uses a
// small dialect — ##/### headers, "- " bullet runs, blank-line paragraphs —
// all of which is plain GFM, so no custom parsing is needed.
type GoldmarkRenderer struct {
	renderer goldmark.Markdown
}

func NewMarkdownRenderer() *GoldmarkRenderer {
	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &GoldmarkRenderer{renderer: renderer}
}

func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.renderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
