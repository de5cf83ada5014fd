package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestBackgroundCSS(t *testing.T) {
	twoLayers := []entities.Layer{
		{Color: "#FFF", Proportion: "30%"},
		{Color: "#000", Proportion: "70%"},
	}

	tests := []struct {
		name       string
		background entities.Background
		want       string
	}{
		{
			// Horizontal orientation flows top to bottom. The mapping is
			// inverted relative to the naming and is part of the output
			// contract; this test pins it.
			name: "horizontal orientation flows top to bottom",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
				Layers:      twoLayers,
			},
			want: "linear-gradient(to bottom, #FFF 0%, #FFF 30%, #000 30%, #000 100%)",
		},
		{
			name: "vertical orientation flows left to right",
			background: entities.Background{
				Orientation: entities.OrientationVertical,
				Layers:      twoLayers,
			},
			want: "linear-gradient(to right, #FFF 0%, #FFF 30%, #000 30%, #000 100%)",
		},
		{
			name: "single layer",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
				Layers:      []entities.Layer{{Color: "#ABC", Proportion: "100%"}},
			},
			want: "linear-gradient(to bottom, #ABC 0%, #ABC 100%)",
		},
		{
			// Proportions are not normalized: underflow leaves a gap.
			name: "underflow is preserved",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
				Layers: []entities.Layer{
					{Color: "#111", Proportion: "20%"},
					{Color: "#222", Proportion: "30%"},
				},
			},
			want: "linear-gradient(to bottom, #111 0%, #111 20%, #222 20%, #222 50%)",
		},
		{
			// Overflow past 100% is preserved too.
			name: "overflow is preserved",
			background: entities.Background{
				Orientation: entities.OrientationVertical,
				Layers: []entities.Layer{
					{Color: "#111", Proportion: "80%"},
					{Color: "#222", Proportion: "80%"},
				},
			},
			want: "linear-gradient(to right, #111 0%, #111 80%, #222 80%, #222 160%)",
		},
		{
			name: "fractional proportions",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
				Layers: []entities.Layer{
					{Color: "#111", Proportion: "12.5%"},
					{Color: "#222", Proportion: "87.5%"},
				},
			},
			want: "linear-gradient(to bottom, #111 0%, #111 12.5%, #222 12.5%, #222 100%)",
		},
		{
			name: "malformed proportion collapses to an empty band",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
				Layers: []entities.Layer{
					{Color: "#111", Proportion: "oops"},
					{Color: "#222", Proportion: "50%"},
				},
			},
			want: "linear-gradient(to bottom, #111 0%, #111 0%, #222 0%, #222 50%)",
		},
		{
			name: "no layers",
			background: entities.Background{
				Orientation: entities.OrientationHorizontal,
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackgroundCSS(tt.background))
		})
	}
}

func TestBackgroundCSS_IsPure(t *testing.T) {
	bg := entities.Background{
		Orientation: entities.OrientationHorizontal,
		Layers: []entities.Layer{
			{Color: "#FFF", Proportion: "30%"},
			{Color: "#000", Proportion: "70%"},
		},
	}

	assert.Equal(t, BackgroundCSS(bg), BackgroundCSS(bg))
}
