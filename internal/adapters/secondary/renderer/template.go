package renderer

import (
	"fmt"
	"html/template"
	"io"
)

// documentTemplate wraps the parsed output-document template.
type documentTemplate struct {
	tmpl *template.Template
}

// slideView is one rendered slide as seen by the document template.
type slideView struct {
	Number     int
	Title      string
	Template   string
	Background string
	Fragments  []string
	Active     bool
}

// navView is one entry of the navigation index.
type navView struct {
	Number int
	Title  string
}

// documentView is the root data passed to the document template.
type documentView struct {
	Title   string
	Styles  []string
	Scripts []string
	Slides  []slideView
	Nav     []navView
}

// newDocumentTemplate parses the output-document template.
func newDocumentTemplate() (*documentTemplate, error) {
	tmpl := template.New("document")

	tmpl = tmpl.Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203 - fragments are produced by the engine itself
		},
		"safeCSS": func(s string) template.CSS {
			return template.CSS(s) // #nosec G203 - values are computed gradient/style strings
		},
		"safeJS": func(s string) template.JS {
			return template.JS(s) // #nosec G203 - scripts are fetched highlighter assets
		},
		"baseStyles":       func() string { return baseStyles },
		"navigationScript": func() string { return navigationScript },
	})

	tmpl, err := tmpl.Parse(outputDocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	return &documentTemplate{tmpl: tmpl}, nil
}

func (d *documentTemplate) execute(w io.Writer, data documentView) error {
	return d.tmpl.Execute(w, data)
}

// outputDocumentTemplate is the static shell of the output document. The
// engine injects computed values (gradients, positions, fragments, the
// navigation index) into it; everything else is fixed.
const outputDocumentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{if .Title}}{{.Title}}{{else}}Presentation{{end}}</title>
    <style>{{baseStyles | safeCSS}}</style>
{{- range .Styles}}
    <style>{{. | safeCSS}}</style>
{{- end}}
</head>
<body>
    <div class="deck">
{{- range .Slides}}
        <section class="slide{{if .Active}} active{{end}}" id="slide-{{.Number}}" data-template="{{.Template}}"{{if .Background}} style="background: {{.Background | safeCSS}}"{{end}}>
{{- range .Fragments}}
            {{. | safeHTML}}
{{- end}}
        </section>
{{- end}}
        <nav class="slide-nav">
            <ol>
{{- range .Nav}}
                <li><a href="#slide-{{.Number}}" data-slide="{{.Number}}">{{.Title}}</a></li>
{{- end}}
            </ol>
        </nav>
        <div class="slide-counter">
            <span id="current-slide">1</span> / <span id="total-slides">{{len .Slides}}</span>
        </div>
    </div>
    <script>{{navigationScript | safeJS}}</script>
{{- range .Scripts}}
    <script>{{. | safeJS}}</script>
{{- end}}
</body>
</html>
`

// baseStyles is the fixed style sheet of the output document.
const baseStyles = `
* { margin: 0; padding: 0; box-sizing: border-box; }
html, body { width: 100%; height: 100%; overflow: hidden; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
.deck { position: relative; width: 100%; height: 100%; }
.slide { position: absolute; top: 0; left: 0; width: 100%; height: 100%; display: none; overflow: hidden; }
.slide.active { display: block; }
.element { max-width: 80%; }
.element img, .element video { max-width: 100%; height: auto; }
.slide-nav { position: fixed; right: 1em; bottom: 3em; z-index: 10; font-size: 0.8em; opacity: 0.7; }
.slide-nav ol { list-style: none; }
.slide-nav a { color: inherit; text-decoration: none; }
.slide-nav a:hover { text-decoration: underline; }
.slide-counter { position: fixed; left: 1em; bottom: 1em; z-index: 10; font-size: 0.8em; opacity: 0.7; }
.unsupported-element { border: 1px dashed #c00; color: #c00; padding: 0.5em; font-size: 0.8em; }
`

// navigationScript is the fixed client-side navigation script.
const navigationScript = `
(function () {
    var slides = document.querySelectorAll('.slide');
    var links = document.querySelectorAll('.slide-nav a');
    var counter = document.getElementById('current-slide');
    var current = 0;

    function show(index) {
        if (index < 0 || index >= slides.length || index === current) return;
        slides[current].classList.remove('active');
        current = index;
        slides[current].classList.add('active');
        if (counter) counter.textContent = String(current + 1);
    }

    document.addEventListener('keydown', function (event) {
        switch (event.key) {
        case 'ArrowRight':
        case 'PageDown':
        case ' ':
            show(current + 1);
            break;
        case 'ArrowLeft':
        case 'PageUp':
            show(current - 1);
            break;
        case 'Home':
            show(0);
            break;
        case 'End':
            show(slides.length - 1);
            break;
        }
    });

    Array.prototype.forEach.call(links, function (link) {
        link.addEventListener('click', function (event) {
            event.preventDefault();
            show(parseInt(link.getAttribute('data-slide'), 10) - 1);
        });
    });
})();
`
