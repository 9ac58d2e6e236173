package domain

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/vifmap/internal/domain/mutagens"
	m "github.com/mouse-blink/vifmap/internal/model"
)

var (
	diagonalBox = m.Box2D{Left: 0, Top: 0, Right: 10, Bottom: 10}
	redBox      = m.Box2D{Left: 30, Top: 0, Right: 40, Bottom: 10}
	blueBox     = m.Box2D{Left: 30, Top: 10, Right: 40, Bottom: 20}
)

func generate(t *testing.T, code string) (image.Image, Generation) {
	t.Helper()

	mg := NewMutagen(&sketchRenderer{})
	code = mutagens.Normalize(code)

	original, err := mg.Baseline(context.Background(), code)
	require.NoError(t, err)

	gen, err := mg.Generate(context.Background(), code, original)
	require.NoError(t, err)

	return original, gen
}

func TestMapper_SingleDiagonal(t *testing.T) {
	original, gen := generate(t, `\draw (0,0) -- (1,1);`)

	features, err := NewMapper().IdentifyFeatures(context.Background(), original, gen.Mutants,
		[]m.Detection{{Label: "diagonal line", Box: diagonalBox}})
	require.NoError(t, err)

	mappings, ok := features.Get("diagonal line")
	require.True(t, ok)
	require.Len(t, mappings, 1)

	assert.InDelta(t, diagonalScore, mappings[0].Score, 1e-9)
	assert.Equal(t, []m.Span{{Start: 0, End: 21}}, mappings[0].Mapping.Spans)
	assert.Equal(t, diagonalBox, mappings[0].Mapping.Zone)
}

func TestMapper_DisjointFeatures(t *testing.T) {
	original, gen := generate(t, figureCode)

	features, err := NewMapper(WithWorkers(2)).IdentifyFeatures(context.Background(), original, gen.Mutants, []m.Detection{
		{Label: "red square", Box: redBox},
		{Label: "blue square", Box: blueBox},
		{Label: "diagonal line", Box: diagonalBox},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"red square", "blue square", "diagonal line"}, features.Labels())

	red, _ := features.Get("red square")
	require.Len(t, red, 1)
	assert.Equal(t, `\fill[red] (3,0) rectangle (4,1);`, spanText(figureCode, red[0].Mapping.Spans[0]))
	assert.InDelta(t, 3*255.0*255.0/4*2/3, red[0].Score, 1e-9)

	blue, _ := features.Get("blue square")
	require.Len(t, blue, 1)
	assert.Equal(t, `\fill[blue] (3,1) rectangle (4,2);`, spanText(figureCode, blue[0].Mapping.Spans[0]))

	// the definition chain and the statement both erase the diagonal
	diagonal, _ := features.Get("diagonal line")
	require.Len(t, diagonal, 2)
	assert.InDelta(t, diagonalScore, diagonal[0].Score, 1e-9)
	assert.Equal(t, diagonal[0].Score, diagonal[1].Score)
	assert.Len(t, diagonal[0].Mapping.Spans, 2)
}

func spanText(code string, s m.Span) string {
	return mutagens.Normalize(code)[s.Start:s.End]
}

func TestMapper_RankingIsNonIncreasing(t *testing.T) {
	original := uniform(20, 20, color.White)

	mutants := make([]m.Mutant, 0, 5)
	for i, gray := range []uint8{250, 0, 255, 100, 200} {
		mutants = append(mutants, m.Mutant{
			Spans: []m.Span{{Start: i, End: i + 1}},
			Image: uniform(20, 20, color.Gray{Y: gray}),
		})
	}

	features, err := NewMapper().IdentifyFeatures(context.Background(), original, mutants,
		[]m.Detection{{Label: "background", Box: m.Box2D{Right: 20, Bottom: 20}}})
	require.NoError(t, err)

	mappings := features[0].Mappings
	require.Len(t, mappings, 4)

	for i := 1; i < len(mappings); i++ {
		assert.GreaterOrEqual(t, mappings[i-1].Score, mappings[i].Score)
	}

	assert.Equal(t, 1, mappings[0].Mapping.Spans[0].Start)
}

func TestMapper_EmptyInputs(t *testing.T) {
	original := uniform(10, 10, color.White)

	features, err := NewMapper().IdentifyFeatures(context.Background(), original, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, features)

	features, err = NewMapper().IdentifyFeatures(context.Background(), original, nil,
		[]m.Detection{{Label: "circle", Box: diagonalBox}})
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Empty(t, features[0].Mappings)
}

func TestMapper_DuplicateLabelsAreMerged(t *testing.T) {
	original, gen := generate(t, figureCode)

	features, err := NewMapper().IdentifyFeatures(context.Background(), original, gen.Mutants, []m.Detection{
		{Label: "square", Box: redBox},
		{Label: "square", Box: blueBox},
	})
	require.NoError(t, err)

	require.Len(t, features, 1)
	require.Len(t, features[0].Mappings, 2)
	assert.Equal(t, redBox, features[0].Mappings[0].Mapping.Zone)
	assert.Equal(t, blueBox, features[0].Mappings[1].Mapping.Zone)
}

func TestMapper_InvalidBoxIsFatal(t *testing.T) {
	original := uniform(10, 10, color.White)

	_, err := NewMapper().IdentifyFeatures(context.Background(), original, nil,
		[]m.Detection{{Label: "broken", Box: m.Box2D{Left: 5, Right: 1, Bottom: 3}}})
	assert.ErrorIs(t, err, m.ErrInvalidBox)
}

func TestMapper_SkipsMismatchedMutants(t *testing.T) {
	original := uniform(10, 10, color.White)
	mutants := []m.Mutant{
		{Spans: []m.Span{{Start: 0, End: 1}}, Image: uniform(4, 4, color.Black)},
		{Spans: []m.Span{{Start: 1, End: 2}}, Image: uniform(10, 10, color.Black)},
	}

	features, err := NewMapper().IdentifyFeatures(context.Background(), original, mutants,
		[]m.Detection{{Label: "all", Box: m.Box2D{Right: 10, Bottom: 10}}})
	require.NoError(t, err)

	require.Len(t, features[0].Mappings, 1)
	assert.Equal(t, 1, features[0].Mappings[0].Mapping.Spans[0].Start)
}

func TestMapper_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	original := uniform(10, 10, color.White)
	mutants := []m.Mutant{{Spans: []m.Span{{Start: 0, End: 1}}, Image: uniform(10, 10, color.Black)}}

	_, err := NewMapper().IdentifyFeatures(ctx, original, mutants,
		[]m.Detection{{Label: "all", Box: m.Box2D{Right: 10, Bottom: 10}}})
	assert.ErrorIs(t, err, context.Canceled)
}
