package ports

import (
	"context"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// MarkupRenderer converts light-markup text to an HTML fragment. It is a
// pure function of its input: no side effects, no retained state.
type MarkupRenderer interface {
	Render(text string) (string, error)
}

// DocumentRenderer assembles a validated presentation into one
// self-contained HTML document. baseDir is the source document's
// directory, used to resolve relative media paths.
type DocumentRenderer interface {
	Render(ctx context.Context, p *entities.Presentation, baseDir string) ([]byte, error)
}
