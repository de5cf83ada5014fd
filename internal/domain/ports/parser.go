package ports

import (
	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// DocumentParser turns raw source text into a presentation. Parsing is
// purely syntactic; cross-checks between templates and slides belong to
// the validator.
type DocumentParser interface {
	Parse(content []byte) (*entities.Presentation, error)
}
