package parser

import (
	"regexp"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// headerPattern recognizes the "[template-id] optional title" form of a
// slide header line.
var headerPattern = regexp.MustCompile(`^\[([^\]]*)\]\s*(.*)$`)

// blockSeparator matches one or more blank lines between content blocks.
var blockSeparator = regexp.MustCompile(`\n[ \t]*\n+`)

// ParseSlides splits the slide body on the slide marker and parses each
// fragment into a slide: the first line is the header, the rest are the
// blank-line-delimited content blocks. A blank fragment before a leading
// marker is discarded.
func ParseSlides(body string) []entities.Slide {
	fragments := strings.Split(body, SlideMarker)
	if len(fragments) > 0 && strings.TrimSpace(fragments[0]) == "" {
		fragments = fragments[1:]
	}

	slides := make([]entities.Slide, 0, len(fragments))
	for i, fragment := range fragments {
		headerLine, rest, _ := strings.Cut(fragment, "\n")
		templateID, title := parseSlideHeader(headerLine)

		slides = append(slides, entities.Slide{
			TemplateID: templateID,
			Title:      title,
			Blocks:     splitBlocks(rest),
			Index:      i,
		})
	}
	return slides
}

// parseSlideHeader parses a slide's first line. A bracketed id, when
// present, becomes the template reference and the remainder the title.
// Without brackets the whole line is the title. A blank line yields
// neither.
func parseSlideHeader(line string) (templateID, title string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	if m := headerPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", line
}

// splitBlocks splits slide body text into content blocks wherever blank
// lines separate them. Each block is trimmed; blank blocks are dropped.
func splitBlocks(text string) []string {
	var blocks []string
	for _, chunk := range blockSeparator.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			blocks = append(blocks, chunk)
		}
	}
	return blocks
}
