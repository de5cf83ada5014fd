package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	r := NewGoldmarkRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading",
			input:    "# Hello",
			contains: []string{"<h1", "Hello", "</h1>"},
		},
		{
			name:     "emphasis and list",
			input:    "- one\n- **two**",
			contains: []string{"<ul>", "<li>one</li>", "<strong>two</strong>"},
		},
		{
			name:     "table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "fenced code keeps prefixed language class",
			input:    "```clojure\n(def x 1)\n```",
			contains: []string{`class="language-clojure"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFixCodeClasses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare class gets prefixed",
			input: `<pre><code class="clojure">(def x 1)</code></pre>`,
			want:  `<pre><code class="language-clojure">(def x 1)</code></pre>`,
		},
		{
			name:  "already prefixed is untouched",
			input: `<pre><code class="language-go">x := 1</code></pre>`,
			want:  `<pre><code class="language-go">x := 1</code></pre>`,
		},
		{
			name:  "multiple token class is untouched",
			input: `<code class="hl inline">x</code>`,
			want:  `<code class="hl inline">x</code>`,
		},
		{
			name:  "code without class is untouched",
			input: `<code>plain</code>`,
			want:  `<code>plain</code>`,
		},
		{
			name:  "multiple code blocks all rewritten",
			input: `<code class="go">a</code> and <code class="rust">b</code>`,
			want:  `<code class="language-go">a</code> and <code class="language-rust">b</code>`,
		},
		{
			name:  "non-code class attributes are untouched",
			input: `<div class="ruby"><code class="ruby">x</code></div>`,
			want:  `<div class="ruby"><code class="language-ruby">x</code></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixCodeClasses(tt.input))
		})
	}
}
