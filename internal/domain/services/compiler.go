package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

// CompilerService runs the conversion pipeline end to end: parse,
// validate, render. Each stage completes before the next begins and no
// state survives a run, so distinct runs may execute concurrently.
type CompilerService struct {
	parser    ports.DocumentParser
	renderer  ports.DocumentRenderer
	validator *Validator
}

// NewCompilerService creates a new compiler service instance.
func NewCompilerService(parser ports.DocumentParser, renderer ports.DocumentRenderer) *CompilerService {
	return &CompilerService{
		parser:    parser,
		renderer:  renderer,
		validator: NewValidator(),
	}
}

// Parse parses and validates source content into a presentation.
func (s *CompilerService) Parse(content []byte) (*entities.Presentation, error) {
	if len(content) == 0 {
		return nil, errors.New("source document cannot be empty")
	}

	presentation, err := s.parser.Parse(content)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(presentation); err != nil {
		return nil, err
	}

	return presentation, nil
}

// Render renders a validated presentation into the output document.
// Media paths resolve relative to baseDir.
func (s *CompilerService) Render(ctx context.Context, p *entities.Presentation, baseDir string) ([]byte, error) {
	if p == nil {
		return nil, errors.New("presentation cannot be nil")
	}
	return s.renderer.Render(ctx, p, baseDir)
}

// Compile converts source content into the output document in one pass.
func (s *CompilerService) Compile(ctx context.Context, content []byte, baseDir string) ([]byte, error) {
	presentation, err := s.Parse(content)
	if err != nil {
		return nil, err
	}
	return s.Render(ctx, presentation, baseDir)
}

// CompileFile reads the source document at path and compiles it. Relative
// media paths resolve against the document's directory.
func (s *CompilerService) CompileFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("source path cannot be empty")
	}

	content, err := os.ReadFile(path) // #nosec G304 - path is the user-supplied source document
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source document not found: %s", path)
		}
		return nil, fmt.Errorf("reading source document: %w", err)
	}

	return s.Compile(ctx, content, filepath.Dir(path))
}
