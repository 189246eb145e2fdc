package nbscribe

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface check
var _ htmlConverter = (*goldmarkConverter)(nil)

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a converter with GFM extensions and syntax
// highlighting. Highlighted code uses CSS classes so the document shell
// controls the palette.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment. Supports context
// cancellation via goroutine + select since Goldmark doesn't natively take
// a context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Precompiled patterns for markdown normalization.
var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// normalizeMarkdown cleans up model output before conversion: line endings
// become \n and runs of blank lines are compressed to one blank line.
func normalizeMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}
