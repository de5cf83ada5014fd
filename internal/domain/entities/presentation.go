package entities

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Presentation is the root value produced by parsing a source document:
// an optional title, the ordered template list, and the ordered slides.
// Template order is meaningful: the first template is the default.
type Presentation struct {
	// Title is the presentation title (optional).
	Title string `yaml:"title" json:"title"`

	// Templates contains the visual layouts in declaration order.
	Templates []Template `yaml:"templates" json:"templates"`

	// Slides contains all presentation slides in source order.
	Slides []Slide `yaml:"-" json:"slides"`
}

// TemplateByID returns the template with the given id, if declared.
func (p *Presentation) TemplateByID(id string) (*Template, bool) {
	for i := range p.Templates {
		if p.Templates[i].ID == id {
			return &p.Templates[i], true
		}
	}
	return nil, false
}

// DefaultTemplate returns the first declared template, or nil if the
// template list is empty.
func (p *Presentation) DefaultTemplate() *Template {
	if len(p.Templates) == 0 {
		return nil
	}
	return &p.Templates[0]
}

// ResolveTemplate returns the effective template for a slide: the one
// matching its explicit id, or the default template when the slide does
// not name one. The validator and the render engine both resolve through
// this method so they can never disagree.
func (p *Presentation) ResolveTemplate(s *Slide) (*Template, bool) {
	if s.TemplateID == "" {
		t := p.DefaultTemplate()
		return t, t != nil
	}
	return p.TemplateByID(s.TemplateID)
}

// SlideCount returns the total number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}

// Template is a named, reusable visual layout: a background plus an
// ordered list of content slots. Element order is the slot order used
// when distributing a slide's content blocks.
type Template struct {
	// ID uniquely identifies the template within a presentation.
	ID string `yaml:"id" json:"id"`

	// Name is the human-readable template name (optional).
	Name string `yaml:"name" json:"name"`

	// Background describes the template's layered background.
	Background Background `yaml:"background" json:"background"`

	// Elements are the content slots in slot order.
	Elements []Element `yaml:"elements" json:"elements"`
}

// DisplayName returns the template's name, falling back to a title-cased
// form of its id. The render engine and the slides API both label slides
// through this method so they can never disagree.
func (t *Template) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	c := cases.Title(language.Und)
	return c.String(strings.ReplaceAll(t.ID, "-", " "))
}

// DistributeBlocks pairs content blocks with the template's elements.
// With exactly as many blocks as elements the pairing is one-to-one; any
// excess blocks are merged into the final element's content, joined by a
// blank line. The pairing is positional: block content is never inspected
// to choose a slot. Callers must provide at least as many blocks as
// elements (enforced by validation); a template with no elements yields
// no content.
func (t *Template) DistributeBlocks(blocks []string) []string {
	n := len(t.Elements)
	if n == 0 {
		return nil
	}

	contents := make([]string, n)
	for i := 0; i < n-1 && i < len(blocks); i++ {
		contents[i] = blocks[i]
	}
	if len(blocks) >= n {
		contents[n-1] = strings.Join(blocks[n-1:], "\n\n")
	}
	return contents
}

// Orientation selects the axis a background's layers stack along.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Background is a layered-gradient background descriptor.
type Background struct {
	// Orientation selects the layer stacking axis.
	Orientation Orientation `yaml:"orientation" json:"orientation"`

	// Layers are the color bands in stacking order. Proportions are not
	// normalized: layers summing to less or more than 100% produce a
	// gradient with gaps or overlap.
	Layers []Layer `yaml:"layers" json:"layers"`
}

// Layer is one color band of a layered background.
type Layer struct {
	// Color is the band's CSS color value.
	Color string `yaml:"color" json:"color"`

	// Proportion is the share of the axis the band occupies, as a CSS
	// percentage string (e.g. "30%").
	Proportion string `yaml:"proportion" json:"proportion"`
}

// ElementType identifies the kind of content an element holds.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementVideo ElementType = "video"
)

// Position locates an element on a slide as CSS percentage offsets.
type Position struct {
	X string `yaml:"x" json:"x"`
	Y string `yaml:"y" json:"y"`
}

// ElementStyle holds optional text styling overrides.
type ElementStyle struct {
	Color string `yaml:"color" json:"color"`
	Align string `yaml:"align" json:"align"`
}

// Element is one content slot within a template. Its index in the
// template's element list is the slot's identity; elements are never
// mutated after parsing.
type Element struct {
	// Type is the declared content kind. Unrecognized values render as a
	// placeholder rather than aborting the conversion.
	Type ElementType `yaml:"type" json:"type"`

	// Position is the slot's absolute position on the slide.
	Position Position `yaml:"position" json:"position"`

	// Style carries optional text overrides; ignored for non-text slots.
	Style *ElementStyle `yaml:"style" json:"style,omitempty"`

	// Controls toggles video playback controls. Unset means enabled.
	Controls *bool `yaml:"controls" json:"controls,omitempty"`

	// Autoplay starts video playback automatically. Default off.
	Autoplay bool `yaml:"autoplay" json:"autoplay"`
}

// ShowControls reports whether a video slot renders playback controls.
func (e *Element) ShowControls() bool {
	if e.Controls == nil {
		return true
	}
	return *e.Controls
}

// Slide is one unit of presented content, bound to a template by id.
// Slides are created once by the parser and never mutated afterwards.
type Slide struct {
	// TemplateID references a template by id. Empty means the default
	// (first declared) template. The reference is resolved by lookup; a
	// dangling id is a validation error, not a crash.
	TemplateID string `json:"templateId,omitempty"`

	// Title is used only for navigation display (optional).
	Title string `json:"title,omitempty"`

	// Blocks are the slide's content chunks: blank-line-delimited,
	// trimmed, with blank fragments removed, in source order.
	Blocks []string `json:"blocks"`

	// Index is the slide position in the document (0-based).
	Index int `json:"index"`
}

// DisplayTitle returns the slide title, or a generated one when absent.
func (s *Slide) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return "Slide " + strconv.Itoa(s.Index+1)
}

// HasExplicitTemplate reports whether the slide names a template itself.
func (s *Slide) HasExplicitTemplate() bool {
	return s.TemplateID != ""
}
