package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/vifmap/internal/model"
)

func TestFilterIgnored(t *testing.T) {
	code := readFixture(t, "ignore")

	t.Run("structural scan", func(t *testing.T) {
		candidates := Scan(code)
		require.Len(t, candidates, 1)
		assert.Equal(t, `\draw (0,0) -- (1,1);`, spanText(code, candidates[0].Spans[0]))
	})

	t.Run("remaining pass", func(t *testing.T) {
		candidates := FindRemaining(code)
		require.Len(t, candidates, 1)
		assert.Equal(t, `\draw (0,0) -- (1,1)`, spanText(code, candidates[0].Spans[0]))
	})

	t.Run("no directive keeps everything", func(t *testing.T) {
		candidates := []m.Candidate{{Spans: []m.Span{{Start: 0, End: 1}}}}
		assert.Equal(t, candidates, FilterIgnored("abc", candidates))
	})
}

func TestIsIgnoreLine(t *testing.T) {
	assert.True(t, isIgnoreLine(`\draw (0,0); % vifmap:ignore`))
	assert.True(t, isIgnoreLine(`%vifmap:ignore`))
	assert.False(t, isIgnoreLine(`\node {50\% vifmap:ignore};`))
	assert.False(t, isIgnoreLine(`\draw (0,0); % keep`))
}
