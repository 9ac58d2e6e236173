package domain

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/vifmap/internal/adapter"
	adaptermocks "github.com/mouse-blink/vifmap/internal/adapter/mocks"
	m "github.com/mouse-blink/vifmap/internal/model"
)

const twoShapes = "\\draw (0,0) -- (1,1);\n\\fill[red] (3,0) rectangle (4,1);"

var (
	drawSpan = m.Span{Start: 0, End: 21}
	fillSpan = m.Span{Start: 22, End: 55}
)

// tableEmbedder returns fixed vectors per text.
type tableEmbedder map[string][]float32

func (e tableEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	v, ok := e[text]
	if !ok {
		return nil, errors.New("unknown text " + text)
	}

	return v, nil
}

func (e tableEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for _, text := range texts {
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}

		vectors = append(vectors, v)
	}

	return vectors, nil
}

func (e tableEmbedder) Similarity(a, b []float32) float64 {
	return adapter.CosineSimilarity(a, b)
}

func scored(score float64, spans ...m.Span) m.ScoredMapping {
	return m.ScoredMapping{Mapping: m.CodeImageMapping{Spans: spans}, Score: score}
}

func newResult(t *testing.T, embedder adapter.Embedder, code string, features m.FeatureMap) *MappedResult {
	t.Helper()

	result, err := NewMappedResult(context.Background(), embedder, image.NewRGBA(image.Rect(0, 0, 4, 4)), code,
		"A diagonal line and a red square.", features)
	require.NoError(t, err)

	return result
}

func shapesEmbedder() tableEmbedder {
	return tableEmbedder{
		"diagonal line": {1, 0},
		"red square":    {0, 1},
		"blue square":   {0.6, 0.8},
		"diagonal":      {1, 0},
	}
}

func TestMappedResult_Annotate(t *testing.T) {
	features := m.FeatureMap{
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}},
		{Label: "red square", Mappings: []m.ScoredMapping{scored(5, fillSpan)}},
	}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	got := result.Annotate(DefaultAnnotateOptions())

	assert.Equal(t, "%diagonal line\n\\draw (0,0) -- (1,1);\n%red square\n\\fill[red] (3,0) rectangle (4,1);", got)
	assert.Equal(t, twoShapes, result.Code())
}

func TestMappedResult_Annotate_SuppressesGlobalOffsets(t *testing.T) {
	features := m.FeatureMap{
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}},
		{Label: "red square", Mappings: []m.ScoredMapping{scored(5, fillSpan), scored(1, drawSpan)}},
	}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	got := result.Annotate(DefaultAnnotateOptions())
	assert.Equal(t, "\\draw (0,0) -- (1,1);\n%red square\n\\fill[red] (3,0) rectangle (4,1);", got)

	got = result.Annotate(AnnotateOptions{Marker: "% ", MaxLabels: 2, IncludeDescription: true})
	assert.Equal(t, "% A diagonal line and a red square.\n"+
		"% diagonal line, red square\n\\draw (0,0) -- (1,1);\n"+
		"% red square\n\\fill[red] (3,0) rectangle (4,1);", got)
}

func TestMappedResult_Annotate_SingleFeatureIsGlobal(t *testing.T) {
	features := m.FeatureMap{
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan), scored(3, fillSpan)}},
	}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	assert.Equal(t, twoShapes, result.Annotate(DefaultAnnotateOptions()))
}

func TestMappedResult_Annotate_NoFeatures(t *testing.T) {
	embedder := adaptermocks.NewMockEmbedder(t)
	result := newResult(t, embedder, twoShapes, nil)

	assert.Equal(t, twoShapes, result.Annotate(DefaultAnnotateOptions()))
	assert.Equal(t, twoShapes, result.Annotate(AnnotateOptions{}))
}

func TestMappedResult_Similarities(t *testing.T) {
	features := m.FeatureMap{
		{Label: "diagonal line"},
		{Label: "red square"},
		{Label: "blue square"},
	}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	sims := result.Similarities([]float32{1, 0}, DefaultEpsilon)
	require.Len(t, sims, 3)

	for _, s := range sims {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}

	assert.InDelta(t, 1, sims[0], 1e-6)
	assert.InDelta(t, 0, sims[1], 1e-6)
	assert.InDelta(t, 0.6, sims[2], 1e-6)
}

func TestMappedResult_Similarities_AllEqual(t *testing.T) {
	embedder := tableEmbedder{"a": {1, 0}, "b": {1, 0}}
	result := newResult(t, embedder, twoShapes, m.FeatureMap{{Label: "a"}, {Label: "b"}})

	sims := result.Similarities([]float32{0, 1}, DefaultEpsilon)
	for _, s := range sims {
		assert.False(t, math.IsNaN(s))
		assert.Equal(t, 0.0, s)
	}
}

func TestMappedResult_Query(t *testing.T) {
	features := m.FeatureMap{
		{Label: "red square", Mappings: []m.ScoredMapping{scored(5, fillSpan)}},
		{Label: "blue square", Mappings: []m.ScoredMapping{scored(7, fillSpan)}},
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}},
	}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	results, err := result.Query(context.Background(), "diagonal", DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"diagonal line", "blue square", "red square"},
		[]string{results[0].Label, results[1].Label, results[2].Label})
	assert.InDelta(t, 10, results[0].Adjusted, 1e-6)
	assert.InDelta(t, 7*math.Pow(0.6, 10), results[1].Adjusted, 1e-6)
	assert.Equal(t, 0.0, results[2].Adjusted)
	assert.Equal(t, 5.0, results[2].Score)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Adjusted, results[i].Adjusted)
	}
}

func TestMappedResult_Query_HashEmbedder(t *testing.T) {
	features := m.FeatureMap{
		{Label: "background color", Mappings: []m.ScoredMapping{scored(900, fillSpan)}},
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}},
	}
	result := newResult(t, adapter.NewHashEmbedder(0), twoShapes, features)

	results, err := result.Query(context.Background(), "diagonal", DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "diagonal line", results[0].Label)
	assert.InDelta(t, 1, results[0].Similarity, 1e-6)
	assert.Equal(t, drawSpan, results[0].Mapping.Spans[0])
	assert.Greater(t, results[0].Adjusted, results[1].Adjusted)
}

func TestMappedResult_Query_EmbedderChanged(t *testing.T) {
	features := m.FeatureMap{
		{Label: "background color", Mappings: []m.ScoredMapping{scored(900, fillSpan)}},
		{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}},
	}
	artifact := newResult(t, adapter.NewHashEmbedder(256), twoShapes, features).Artifact()
	assert.Equal(t, "hash/256", artifact.EmbeddingModel)

	_, err := Restore(artifact, adapter.NewHashEmbedder(128))
	require.ErrorIs(t, err, ErrEmbeddingMismatch)

	artifact.EmbeddingModel = ""
	restored, err := Restore(artifact, adapter.NewHashEmbedder(128))
	require.NoError(t, err)

	_, err = restored.Query(context.Background(), "diagonal", DefaultQueryOptions())
	assert.ErrorIs(t, err, ErrEmbeddingMismatch)
}

func TestMappedResult_Query_EmptyMap(t *testing.T) {
	embedder := adaptermocks.NewMockEmbedder(t)
	result := newResult(t, embedder, twoShapes, m.FeatureMap{})

	results, err := result.Query(context.Background(), "anything", DefaultQueryOptions())
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestMappedResult_Query_EmbedError(t *testing.T) {
	embedder := adaptermocks.NewMockEmbedder(t)
	boom := errors.New("quota exceeded")

	embedder.EXPECT().EmbedBatch(mock.Anything, []string{"diagonal line"}).Return([][]float32{{1}}, nil)
	embedder.EXPECT().Embed(mock.Anything, "diagonal").Return(nil, boom)

	result := newResult(t, embedder, twoShapes, m.FeatureMap{{Label: "diagonal line"}})

	_, err := result.Query(context.Background(), "diagonal", QueryOptions{})
	assert.ErrorIs(t, err, boom)
}

func TestNewMappedResult_EmbeddingMismatch(t *testing.T) {
	embedder := adaptermocks.NewMockEmbedder(t)
	embedder.EXPECT().EmbedBatch(mock.Anything, []string{"a", "b"}).Return([][]float32{{1}}, nil)

	_, err := NewMappedResult(context.Background(), embedder, nil, "", "", m.FeatureMap{{Label: "a"}, {Label: "b"}})
	assert.ErrorIs(t, err, ErrEmbeddingMismatch)
}

func TestRestore(t *testing.T) {
	features := m.FeatureMap{{Label: "diagonal line", Mappings: []m.ScoredMapping{scored(10, drawSpan)}}}
	result := newResult(t, shapesEmbedder(), twoShapes, features)

	artifact := result.Artifact()
	assert.Equal(t, [][]float32{{1, 0}}, artifact.Embeddings)

	restored, err := Restore(artifact, shapesEmbedder())
	require.NoError(t, err)
	assert.Equal(t, result.Code(), restored.Code())
	assert.Equal(t, result.Features(), restored.Features())
	assert.Equal(t, result.Description(), restored.Description())
	assert.Equal(t, result.Image(), restored.Image())

	artifact.Embeddings = nil
	_, err = Restore(artifact, shapesEmbedder())
	assert.ErrorIs(t, err, ErrEmbeddingMismatch)
}

func TestMappedResult_Highlight(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		mappings []m.CodeImageMapping
		want     string
	}{
		{
			name:     "single span",
			code:     "abc\ndef",
			mappings: []m.CodeImageMapping{{Spans: []m.Span{{Start: 4, End: 7}}}},
			want:     "abc\n%<\ndef%>\n",
		},
		{
			name: "overlapping spans merge",
			code: "abcdef",
			mappings: []m.CodeImageMapping{
				{Spans: []m.Span{{Start: 0, End: 2}}},
				{Spans: []m.Span{{Start: 1, End: 3}}},
			},
			want: "%<\nabc%>\ndef",
		},
		{
			name:     "scope closing brace stays live",
			code:     `\scoped{\draw (0,0) -- (1,1);}`,
			mappings: []m.CodeImageMapping{{Spans: []m.Span{{Start: 8, End: 29}}}},
			want:     "\\scoped{%<\n\\draw (0,0) -- (1,1);%>\n}",
		},
		{
			name:     "invalid spans skipped",
			code:     "abc",
			mappings: []m.CodeImageMapping{{Spans: []m.Span{{Start: 2, End: 9}}}},
			want:     "abc",
		},
		{
			name: "no mappings",
			code: "abc",
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newResult(t, shapesEmbedder(), tt.code, nil)
			assert.Equal(t, tt.want, result.Highlight(tt.mappings, HighlightOpen, HighlightClose))
		})
	}
}
