package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "figure.tex", width: 0, want: ""},
		{text: "figure.tex", width: 20, want: "figure.tex"},
		{text: "figure.tex", width: 1, want: "…"},
		{text: "figure.tex", width: 4, want: "fig…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateToWidth(tt.text, tt.width), "%q at %d", tt.text, tt.width)
	}
}

func TestAnimateScroll(t *testing.T) {
	assert.Empty(t, animateScroll("figure.tex", 0, 0))
	assert.Equal(t, "a.tex", animateScroll("a.tex", 8, 40))

	for frame := range marqueeDelay {
		assert.Equal(t, "fi…", animateScroll("figure.tex", 3, frame))
	}

	assert.Equal(t, "fig", animateScroll("figure.tex", 3, marqueeDelay))
	assert.Equal(t, "igu", animateScroll("figure.tex", 3, marqueeDelay+1))
	assert.Equal(t, "x  ", animateScroll("figure.tex", 3, marqueeDelay+9))
	assert.Equal(t, "fig", animateScroll("figure.tex", 3, marqueeDelay+len("figure.tex"+marqueeGap)))
}
