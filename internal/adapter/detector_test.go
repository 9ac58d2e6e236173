package adapter

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/vifmap/internal/model"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "bare", text: "  [1, 2]  ", want: "[1, 2]"},
		{name: "json fence", text: "Here you go:\n```json\n{\"a\": 1}\n```\nDone.", want: `{"a": 1}`},
		{name: "fence without language", text: "```\n[]\n```", want: "[]"},
		{name: "inline fence", text: "```[{\"label\": \"x\"}]```", want: `[{"label": "x"}]`},
		{name: "unterminated fence", text: "```json\n{\"a\": 2}", want: `{"a": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.text))
		})
	}
}

func TestParseDescription(t *testing.T) {
	d, err := ParseDescription("```json\n" +
		`{"description": "a red square next to a blue line", "features": ["red square", "blue line"]}` +
		"\n```")
	require.NoError(t, err)

	assert.Equal(t, "a red square next to a blue line", d.Text)
	assert.Equal(t, []string{"red square", "blue line"}, d.Features)

	_, err = ParseDescription("I cannot see an image.")
	require.ErrorIs(t, err, ErrDetectionParse)
}

func TestParseDetections(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 100)

	t.Run("rescales the grid", func(t *testing.T) {
		raw := "```json\n" + `[
  {"box_2d": [100, 250, 500, 750], "label": "red square"},
  {"box_2d": [0, 0, 1000, 1000], "label": "frame"}
]` + "\n```"

		got, err := ParseDetections(raw, bounds, DetectorScale)
		require.NoError(t, err)

		assert.Equal(t, []m.Detection{
			{Label: "red square", Box: m.Box2D{Left: 50, Top: 10, Right: 150, Bottom: 50}},
			{Label: "frame", Box: m.Box2D{Left: 0, Top: 0, Right: 200, Bottom: 100}},
		}, got)
	})

	t.Run("zero scale keeps pixels", func(t *testing.T) {
		got, err := ParseDetections(`[{"box_2d": [1, 2, 3, 4], "label": "dot"}]`, bounds, 0)
		require.NoError(t, err)

		assert.Equal(t, []m.Detection{{Label: "dot", Box: m.Box2D{Left: 2, Top: 1, Right: 4, Bottom: 3}}}, got)
	})

	t.Run("invalid box names the entry", func(t *testing.T) {
		_, err := ParseDetections(`[{"box_2d": [0, 0, 10, 10], "label": "ok"}, {"box_2d": [500, 750, 100, 250], "label": "bad"}]`,
			bounds, DetectorScale)
		require.ErrorIs(t, err, ErrDetectionParse)
		require.ErrorIs(t, err, m.ErrInvalidBox)
		assert.Contains(t, err.Error(), "entry 1")
	})

	t.Run("empty list", func(t *testing.T) {
		got, err := ParseDetections("[]", bounds, DetectorScale)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	errorCases := map[string]string{
		"not json":          "no boxes found",
		"short box":         `[{"box_2d": [1, 2, 3], "label": "dot"}]`,
		"missing label":     `[{"box_2d": [1, 2, 3, 4], "label": " "}]`,
		"object not a list": `{"box_2d": [1, 2, 3, 4], "label": "dot"}`,
		"inverted box":      `[{"box_2d": [500, 750, 100, 250], "label": "red square"}]`,
		"negative corner":   `[{"box_2d": [-10, 0, 100, 100], "label": "dot"}]`,
	}

	for name, raw := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDetections(raw, bounds, DetectorScale)
			require.ErrorIs(t, err, ErrDetectionParse)
		})
	}
}

func TestRescaleBox(t *testing.T) {
	got := RescaleBox([4]float64{500, 0, 1000, 500}, 40, 20, 1000)
	assert.Equal(t, m.Box2D{Left: 0, Top: 10, Right: 20, Bottom: 20}, got)
}
