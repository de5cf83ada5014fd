package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkRenderer implements the MarkupRenderer port using Goldmark.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a new Goldmark-based markup renderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,           // GitHub Flavored Markdown
			extension.Typographer,   // Smart punctuation
			extension.Table,         // Tables
			extension.Strikethrough, // ~~strikethrough~~
			extension.TaskList,      // - [ ] task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Allow raw HTML
		),
	)

	return &GoldmarkRenderer{md: md}
}

// Render converts light-markup text to an HTML fragment and applies the
// code-class fix-up so fenced code blocks carry highlighter-compatible
// class names.
func (r *GoldmarkRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("rendering markup: %w", err)
	}
	return FixCodeClasses(buf.String()), nil
}

// codeClassPattern matches the class attribute of a code element.
var codeClassPattern = regexp.MustCompile(`(<code[^>]*\bclass=")([^"]+)(")`)

// FixCodeClasses rewrites bare language annotations on code elements to
// the "language-" prefixed form the syntax highlighter expects. Without
// this rewrite highlighting silently fails to apply. Classes already in
// prefixed form, or carrying multiple tokens, pass through untouched.
func FixCodeClasses(fragment string) string {
	return codeClassPattern.ReplaceAllStringFunc(fragment, func(match string) string {
		sub := codeClassPattern.FindStringSubmatch(match)
		class := sub[2]
		if strings.HasPrefix(class, "language-") || strings.ContainsAny(class, " \t") {
			return match
		}
		return sub[1] + "language-" + class + sub[3]
	})
}
