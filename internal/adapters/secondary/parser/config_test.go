package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestParseConfig(t *testing.T) {
	header := `
title: Quarterly Review
templates:
  - id: cover
    name: Cover
    background:
      orientation: vertical
      layers:
        - color: "#1A1A2E"
          proportion: "40%"
        - color: "#16213E"
          proportion: "60%"
    elements:
      - type: text
        position: {x: "10%", y: "35%"}
        style: {color: "#EEEEEE", align: center}
  - id: media
    background:
      orientation: horizontal
      layers:
        - color: "#FFFFFF"
          proportion: "100%"
    elements:
      - type: image
        position: {x: "20%", y: "20%"}
      - type: video
        position: {x: "20%", y: "60%"}
        controls: false
        autoplay: true
`

	title, templates, err := ParseConfig(header)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Review", title)
	require.Len(t, templates, 2)

	cover := templates[0]
	assert.Equal(t, "cover", cover.ID)
	assert.Equal(t, "Cover", cover.Name)
	assert.Equal(t, entities.OrientationVertical, cover.Background.Orientation)
	require.Len(t, cover.Background.Layers, 2)
	assert.Equal(t, "#1A1A2E", cover.Background.Layers[0].Color)
	assert.Equal(t, "40%", cover.Background.Layers[0].Proportion)

	require.Len(t, cover.Elements, 1)
	text := cover.Elements[0]
	assert.Equal(t, entities.ElementText, text.Type)
	assert.Equal(t, "10%", text.Position.X)
	assert.Equal(t, "35%", text.Position.Y)
	require.NotNil(t, text.Style)
	assert.Equal(t, "#EEEEEE", text.Style.Color)
	assert.Equal(t, "center", text.Style.Align)

	media := templates[1]
	require.Len(t, media.Elements, 2)
	video := media.Elements[1]
	assert.Equal(t, entities.ElementVideo, video.Type)
	assert.False(t, video.ShowControls())
	assert.True(t, video.Autoplay)
}

func TestParseConfig_Defaults(t *testing.T) {
	header := `
templates:
  - id: minimal
    elements:
      - type: video
        position: {x: "0%", y: "0%"}
`

	title, templates, err := ParseConfig(header)
	require.NoError(t, err)
	assert.Empty(t, title)
	require.Len(t, templates, 1)

	video := templates[0].Elements[0]
	assert.True(t, video.ShowControls(), "controls default to enabled")
	assert.False(t, video.Autoplay, "autoplay defaults to off")
	assert.Nil(t, video.Style)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, _, err := ParseConfig("templates:\n  - id: [unclosed")

	var parseErr *entities.ConfigParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Error(t, parseErr.Unwrap())
}

func TestParseConfig_Empty(t *testing.T) {
	// An empty header is syntactically fine; the validator rejects the
	// missing templates afterwards.
	title, templates, err := ParseConfig("")
	require.NoError(t, err)
	assert.Empty(t, title)
	assert.Empty(t, templates)
}
