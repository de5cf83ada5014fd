package entities

import "fmt"

// All conversion failures surface as one of the typed errors below. Every
// kind is fatal to the run except an unrecognized element type, which the
// render engine degrades to a placeholder fragment instead.

// MalformedDocumentError reports a source document that lacks the
// header/body separator line.
type MalformedDocumentError struct {
	// Separator is the literal line that was expected.
	Separator string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: missing %q separator line", e.Separator)
}

// ConfigParseError reports a syntactically invalid configuration block.
type ConfigParseError struct {
	Err error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("parsing configuration block: %v", e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// NoTemplatesError reports a configuration that declares no templates.
type NoTemplatesError struct{}

func (e *NoTemplatesError) Error() string {
	return "configuration must declare at least one template"
}

// DuplicateTemplateIDError reports two templates sharing one id.
type DuplicateTemplateIDError struct {
	ID string
}

func (e *DuplicateTemplateIDError) Error() string {
	return fmt.Sprintf("duplicate template id %q", e.ID)
}

// BlankTemplateIDError reports a template whose id is empty or
// whitespace-only. Position is 1-based within the template list.
type BlankTemplateIDError struct {
	Position int
}

func (e *BlankTemplateIDError) Error() string {
	return fmt.Sprintf("template %d has a blank id", e.Position)
}

// UnknownTemplateError reports a slide referencing a template id that no
// declared template carries. SlideIndex is 1-based.
type UnknownTemplateError struct {
	SlideIndex int
	SlideTitle string
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	if e.SlideTitle != "" {
		return fmt.Sprintf("slide %d (%q) references unknown template %q",
			e.SlideIndex, e.SlideTitle, e.TemplateID)
	}
	return fmt.Sprintf("slide %d references unknown template %q",
		e.SlideIndex, e.TemplateID)
}

// InsufficientContentError reports a slide with fewer content blocks than
// its template declares elements. SlideIndex is 1-based. Excess blocks
// are never an error; they merge into the final slot.
type InsufficientContentError struct {
	SlideIndex int
	SlideTitle string
	TemplateID string
	Expected   int
	Provided   int
}

func (e *InsufficientContentError) Error() string {
	subject := fmt.Sprintf("slide %d", e.SlideIndex)
	if e.SlideTitle != "" {
		subject = fmt.Sprintf("slide %d (%q)", e.SlideIndex, e.SlideTitle)
	}
	return fmt.Sprintf("%s: template %q declares %d elements but only %d content blocks were provided",
		subject, e.TemplateID, e.Expected, e.Provided)
}

// MediaNotFoundError reports a referenced media file whose path does not
// resolve relative to the source document.
type MediaNotFoundError struct {
	Path string
}

func (e *MediaNotFoundError) Error() string {
	return fmt.Sprintf("media file not found: %s", e.Path)
}
