package parser

import (
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

const (
	// HeaderSeparator is the literal line dividing the configuration
	// block from the slide body.
	HeaderSeparator = "END"

	// SlideMarker begins each slide in the body.
	SlideMarker = "-*-*-"
)

// DocumentParserAdapter implements the DocumentParser port for the
// slidesmith source format: a YAML configuration block, the END
// separator, and marker-delimited slide bodies.
type DocumentParserAdapter struct{}

// NewDocumentParserAdapter creates a new document parser.
func NewDocumentParserAdapter() *DocumentParserAdapter {
	return &DocumentParserAdapter{}
}

// Parse implements the DocumentParser interface.
func (a *DocumentParserAdapter) Parse(content []byte) (*entities.Presentation, error) {
	// Normalize line endings once so every later split sees plain \n.
	source := strings.ReplaceAll(string(content), "\r\n", "\n")

	header, body, err := SplitDocument(source)
	if err != nil {
		return nil, err
	}

	title, templates, err := ParseConfig(header)
	if err != nil {
		return nil, err
	}

	return &entities.Presentation{
		Title:     title,
		Templates: templates,
		Slides:    ParseSlides(body),
	}, nil
}

// SplitDocument splits raw source into the configuration block and the
// slide body on the first HeaderSeparator line. A document without the
// separator is malformed; this is the first validation checkpoint and is
// fatal.
func SplitDocument(content string) (header, body string, err error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == HeaderSeparator {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}
	return "", "", &entities.MalformedDocumentError{Separator: HeaderSeparator}
}
