package services

import (
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// Validator cross-checks parsed slides against parsed templates. Both
// phases are fatal on failure: there is no partial-presentation output.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs template-set validation followed by per-slide validation.
// The first violation found is returned as a typed error.
func (v *Validator) Validate(p *entities.Presentation) error {
	if err := v.validateTemplates(p); err != nil {
		return err
	}
	return v.validateSlides(p)
}

// validateTemplates checks the template list in isolation: it must be
// non-empty, and every id must be non-blank and unique.
func (v *Validator) validateTemplates(p *entities.Presentation) error {
	if len(p.Templates) == 0 {
		return &entities.NoTemplatesError{}
	}

	seen := make(map[string]struct{}, len(p.Templates))
	for i := range p.Templates {
		id := p.Templates[i].ID
		if strings.TrimSpace(id) == "" {
			return &entities.BlankTemplateIDError{Position: i + 1}
		}
		if _, dup := seen[id]; dup {
			return &entities.DuplicateTemplateIDError{ID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// validateSlides resolves each slide's effective template and compares
// element and block counts. Fewer blocks than elements is the only
// count-based failure; excess blocks merge into the final slot during
// rendering and are always allowed.
func (v *Validator) validateSlides(p *entities.Presentation) error {
	for i := range p.Slides {
		slide := &p.Slides[i]

		tpl, ok := p.ResolveTemplate(slide)
		if !ok {
			return &entities.UnknownTemplateError{
				SlideIndex: i + 1,
				SlideTitle: slide.Title,
				TemplateID: slide.TemplateID,
			}
		}

		if len(slide.Blocks) < len(tpl.Elements) {
			return &entities.InsufficientContentError{
				SlideIndex: i + 1,
				SlideTitle: slide.Title,
				TemplateID: tpl.ID,
				Expected:   len(tpl.Elements),
				Provided:   len(slide.Blocks),
			}
		}
	}
	return nil
}
