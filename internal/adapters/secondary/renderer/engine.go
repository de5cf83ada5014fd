package renderer

import (
	"bytes"
	"context"
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

// Asset identifies a third-party asset inlined verbatim into the output
// document.
type Asset struct {
	// URL is where the asset is fetched from.
	URL string

	// CacheKey is the stable key the provider caches the asset under.
	CacheKey string

	// Kind is "style" or "script" and decides the wrapping tag.
	Kind string
}

// Asset kinds.
const (
	AssetStyle  = "style"
	AssetScript = "script"
)

// Engine implements the DocumentRenderer port: it turns a validated
// presentation into one self-contained HTML document with all media and
// third-party assets inlined.
type Engine struct {
	markup   ports.MarkupRenderer
	embedder ports.MediaEmbedder
	provider ports.AssetProvider
	assets   []Asset
	document *documentTemplate
}

// NewEngine creates a render engine. The assets list names the
// third-party styles and scripts inlined into every output document.
func NewEngine(markup ports.MarkupRenderer, embedder ports.MediaEmbedder, provider ports.AssetProvider, assets []Asset) (*Engine, error) {
	document, err := newDocumentTemplate()
	if err != nil {
		return nil, err
	}

	return &Engine{
		markup:   markup,
		embedder: embedder,
		provider: provider,
		assets:   assets,
		document: document,
	}, nil
}

// Render assembles the final document: per-template backgrounds computed
// once, per-slide fragments from the greedy block distribution, and the
// navigation index. Output slide order equals source order; only the
// first slide is initially visible.
func (e *Engine) Render(ctx context.Context, p *entities.Presentation, baseDir string) ([]byte, error) {
	styles, scripts, err := e.fetchAssets(ctx)
	if err != nil {
		return nil, err
	}

	// The gradient is a pure function of the template, so compute it once
	// per distinct template rather than once per slide.
	backgrounds := make(map[string]string, len(p.Templates))
	for i := range p.Templates {
		backgrounds[p.Templates[i].ID] = BackgroundCSS(p.Templates[i].Background)
	}

	slides := make([]slideView, 0, len(p.Slides))
	nav := make([]navView, 0, len(p.Slides))
	for i := range p.Slides {
		slide := &p.Slides[i]

		tpl, ok := p.ResolveTemplate(slide)
		if !ok {
			return nil, &entities.UnknownTemplateError{
				SlideIndex: i + 1,
				SlideTitle: slide.Title,
				TemplateID: slide.TemplateID,
			}
		}

		fragments, err := e.renderFragments(tpl, slide, baseDir)
		if err != nil {
			return nil, fmt.Errorf("rendering slide %d: %w", i+1, err)
		}

		slides = append(slides, slideView{
			Number:     i + 1,
			Title:      slide.DisplayTitle(),
			Template:   tpl.DisplayName(),
			Background: backgrounds[tpl.ID],
			Fragments:  fragments,
			Active:     i == 0,
		})
		nav = append(nav, navView{Number: i + 1, Title: slide.DisplayTitle()})
	}

	var buf bytes.Buffer
	err = e.document.execute(&buf, documentView{
		Title:   p.Title,
		Styles:  styles,
		Scripts: scripts,
		Slides:  slides,
		Nav:     nav,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return buf.Bytes(), nil
}

// fetchAssets retrieves the configured third-party assets, split by kind.
func (e *Engine) fetchAssets(ctx context.Context) (styles, scripts []string, err error) {
	for _, asset := range e.assets {
		content, err := e.provider.Fetch(ctx, asset.URL, asset.CacheKey)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching %s asset: %w", asset.Kind, err)
		}
		switch asset.Kind {
		case AssetScript:
			scripts = append(scripts, content)
		default:
			styles = append(styles, content)
		}
	}
	return styles, scripts, nil
}

// renderFragments pairs the slide's blocks with the template's elements
// and renders one positioned fragment per element.
func (e *Engine) renderFragments(tpl *entities.Template, slide *entities.Slide, baseDir string) ([]string, error) {
	contents := tpl.DistributeBlocks(slide.Blocks)

	fragments := make([]string, 0, len(tpl.Elements))
	for i := range tpl.Elements {
		fragment, err := e.renderFragment(&tpl.Elements[i], contents[i], baseDir)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// renderFragment renders one (element, content) pair as a positioned
// fragment. An unrecognized element type renders a visible placeholder
// instead of failing, so one bad slot cannot abort the presentation.
func (e *Engine) renderFragment(el *entities.Element, content, baseDir string) (string, error) {
	var inner string

	switch el.Type {
	case entities.ElementText:
		rendered, err := e.markup.Render(content)
		if err != nil {
			return "", fmt.Errorf("rendering text content: %w", err)
		}
		inner = rendered

	case entities.ElementImage:
		alt, path := imageReference(content)
		uri, err := e.embedder.Embed(baseDir, path)
		if err != nil {
			return "", err
		}
		inner = fmt.Sprintf(`<img src="%s" alt="%s">`, uri, stdhtml.EscapeString(alt))

	case entities.ElementVideo:
		uri, err := e.embedder.Embed(baseDir, strings.TrimSpace(content))
		if err != nil {
			return "", err
		}
		var attrs strings.Builder
		if el.ShowControls() {
			attrs.WriteString(" controls")
		}
		if el.Autoplay {
			attrs.WriteString(" autoplay")
		}
		inner = fmt.Sprintf(`<video src="%s"%s></video>`, uri, attrs.String())

	default:
		inner = fmt.Sprintf(`<div class="unsupported-element">unsupported element type: %s</div>`,
			stdhtml.EscapeString(string(el.Type)))
	}

	return fmt.Sprintf(`<div class="element" style="%s">%s</div>`, elementStyle(el), inner), nil
}

// elementStyle derives the fragment's absolute-position styling from the
// element's position and, for text, its optional overrides.
func elementStyle(el *entities.Element) string {
	rules := []string{
		"position: absolute",
		"left: " + el.Position.X,
		"top: " + el.Position.Y,
	}
	if el.Type == entities.ElementText && el.Style != nil {
		if el.Style.Color != "" {
			rules = append(rules, "color: "+el.Style.Color)
		}
		if el.Style.Align != "" {
			rules = append(rules, "text-align: "+el.Style.Align)
		}
	}
	return strings.Join(rules, "; ")
}

// imagePattern matches an image-markup reference: ![alt](path).
var imagePattern = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)

// imageReference interprets image slot content as either an image-markup
// reference or a bare relative path.
func imageReference(content string) (alt, path string) {
	content = strings.TrimSpace(content)
	if m := imagePattern.FindStringSubmatch(content); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", content
}
