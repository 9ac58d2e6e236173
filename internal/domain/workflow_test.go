package domain_test

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/vifmap/internal/adapter"
	adaptermocks "github.com/mouse-blink/vifmap/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/vifmap/internal/controller/mocks"
	"github.com/mouse-blink/vifmap/internal/domain"
	domainmocks "github.com/mouse-blink/vifmap/internal/domain/mocks"
	m "github.com/mouse-blink/vifmap/internal/model"
)

type workflowMocks struct {
	fs       *adaptermocks.MockSourceFSAdapter
	store    *adaptermocks.MockResultStore
	ui       *controllermocks.MockUI
	detector *adaptermocks.MockDetector
	embedder *adaptermocks.MockEmbedder
	mutagen  *domainmocks.MockMutagen
	mapper   *domainmocks.MockMapper
}

func newWorkflowMocks(t *testing.T) workflowMocks {
	return workflowMocks{
		fs:       adaptermocks.NewMockSourceFSAdapter(t),
		store:    adaptermocks.NewMockResultStore(t),
		ui:       controllermocks.NewMockUI(t),
		detector: adaptermocks.NewMockDetector(t),
		embedder: adaptermocks.NewMockEmbedder(t),
		mutagen:  domainmocks.NewMockMutagen(t),
		mapper:   domainmocks.NewMockMapper(t),
	}
}

func (w workflowMocks) workflow() domain.Workflow {
	return domain.NewWorkflow(w.fs, w.store, w.ui, w.detector, w.embedder, w.mutagen, w.mapper)
}

const diagonalCode = `\draw (0,0) -- (1,1);`

var (
	figureSource = m.Source{Path: "examples/diagonal/figure.tex", Hash: "0123456789abcdef0123"}
	diagonalBox  = m.Box2D{Right: 10, Bottom: 10}
	diagonalMap  = m.FeatureMap{{
		Label: "diagonal line",
		Mappings: []m.ScoredMapping{{
			Mapping: m.CodeImageMapping{Spans: []m.Span{{Start: 0, End: 21}}, Zone: diagonalBox},
			Score:   4876.875,
		}},
	}}
)

func TestWorkflow_Estimate(t *testing.T) {
	w := newWorkflowMocks(t)
	paths := []m.Path{"examples/..."}
	sources := []m.Source{figureSource, {Path: "examples/scopes/figure.tex"}}

	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.fs.EXPECT().Get(paths).Return(sources, nil)
	w.fs.EXPECT().ReadFile(sources[0].Path).Return([]byte(diagonalCode), nil)
	w.fs.EXPECT().ReadFile(sources[1].Path).Return([]byte(`\begin{scope}\end{scope}`), nil)
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(make([]m.Candidate, 1), make([]m.Candidate, 1))
	w.mutagen.EXPECT().Candidates(`\begin{scope}\end{scope}`).Return(make([]m.Candidate, 1), nil)
	w.ui.EXPECT().DisplayEstimation([]m.Estimation{
		{Source: sources[0], Structural: 1, Remaining: 1},
		{Source: sources[1], Structural: 1, Remaining: 0},
	}, nil).Return(nil)

	require.NoError(t, w.workflow().Estimate(context.Background(), domain.EstimateArgs{Paths: paths}))
}

func TestWorkflow_Estimate_GetError(t *testing.T) {
	w := newWorkflowMocks(t)
	boom := errors.New("boom")

	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.fs.EXPECT().Get(mock.Anything).Return(nil, boom)
	w.ui.EXPECT().DisplayEstimation([]m.Estimation(nil), mock.MatchedBy(func(err error) bool {
		return errors.Is(err, boom)
	})).RunAndReturn(func(_ []m.Estimation, err error) error { return err })

	err := w.workflow().Estimate(context.Background(), domain.EstimateArgs{Paths: []m.Path{"missing"}})
	assert.ErrorIs(t, err, boom)
}

func expectLoad(w workflowMocks, code string) {
	w.fs.EXPECT().Get([]m.Path{figureSource.Path}).Return([]m.Source{figureSource}, nil)
	w.fs.EXPECT().ReadFile(figureSource.Path).Return([]byte(code), nil)
}

func TestWorkflow_Map_WithDetector(t *testing.T) {
	w := newWorkflowMocks(t)
	original := image.NewRGBA(image.Rect(0, 0, 40, 20))
	detections := []m.Detection{{Label: "diagonal line", Box: diagonalBox}}
	mutants := []m.Mutant{{Spans: []m.Span{{Start: 0, End: 21}}}}

	expectLoad(w, "  "+diagonalCode+"  ")
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(make([]m.Candidate, 1), make([]m.Candidate, 1))
	w.ui.EXPECT().DisplayMapStarted(m.Estimation{Source: figureSource, Structural: 1, Remaining: 1})
	w.mutagen.EXPECT().Baseline(mock.Anything, diagonalCode).Return(original, nil)
	w.detector.EXPECT().Describe(mock.Anything, original).Return(adapter.Description{
		Text:     "A diagonal line.",
		Features: []string{"diagonal line"},
	}, nil)
	w.detector.EXPECT().Localize(mock.Anything, original, []string{"diagonal line"}).Return(detections, nil)
	w.mutagen.EXPECT().Generate(mock.Anything, diagonalCode, original).Return(domain.Generation{Mutants: mutants, Rejected: 2}, nil)
	w.mapper.EXPECT().IdentifyFeatures(mock.Anything, original, mutants, detections).Return(diagonalMap, nil)
	w.embedder.EXPECT().EmbedBatch(mock.Anything, []string{"diagonal line"}).Return([][]float32{{1, 0}}, nil)
	w.store.EXPECT().Save(mock.Anything, "figure-01234567", m.Artifact{
		Image:       original,
		Code:        diagonalCode,
		Description: "A diagonal line.",
		Features:    diagonalMap,
		Embeddings:  [][]float32{{1, 0}},
	}).Return(nil)
	w.ui.EXPECT().DisplayMapCompleted(m.MapSummary{
		ID:          "figure-01234567",
		Source:      figureSource,
		Description: "A diagonal line.",
		Code:        diagonalCode,
		Mutants:     1,
		Rejected:    2,
		Features:    diagonalMap,
	})

	require.NoError(t, w.workflow().Map(context.Background(), domain.MapArgs{Path: figureSource.Path}))
}

func TestWorkflow_Map_WithDetectionsFile(t *testing.T) {
	w := newWorkflowMocks(t)
	original := image.NewRGBA(image.Rect(0, 0, 40, 20))
	detections := []m.Detection{{Label: "diagonal line", Box: m.Box2D{Left: 0, Top: 0, Right: 20, Bottom: 10}}}

	expectLoad(w, diagonalCode)
	w.fs.EXPECT().ReadFile(m.Path("boxes.json")).
		Return([]byte(`[{"label": "diagonal line", "box_2d": [0, 0, 500, 500]}]`), nil)
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(nil, nil)
	w.ui.EXPECT().DisplayMapStarted(mock.Anything)
	w.mutagen.EXPECT().Baseline(mock.Anything, diagonalCode).Return(original, nil)
	w.mutagen.EXPECT().Generate(mock.Anything, diagonalCode, original).Return(domain.Generation{}, nil)
	w.mapper.EXPECT().IdentifyFeatures(mock.Anything, original, []m.Mutant(nil), detections).Return(diagonalMap, nil)
	w.embedder.EXPECT().EmbedBatch(mock.Anything, []string{"diagonal line"}).Return([][]float32{{1, 0}}, nil)
	w.store.EXPECT().Save(mock.Anything, "custom", mock.Anything).Return(nil)
	w.ui.EXPECT().DisplayMapCompleted(mock.MatchedBy(func(s m.MapSummary) bool {
		return s.ID == "custom" && s.Description == ""
	}))

	err := w.workflow().Map(context.Background(), domain.MapArgs{
		Path:       figureSource.Path,
		ID:         "custom",
		Detections: "boxes.json",
		Scale:      1000,
	})
	require.NoError(t, err)
}

func TestWorkflow_Map_NoDetectionsSkipsGeneration(t *testing.T) {
	w := newWorkflowMocks(t)
	original := image.NewRGBA(image.Rect(0, 0, 40, 20))

	expectLoad(w, diagonalCode)
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(nil, nil)
	w.ui.EXPECT().DisplayMapStarted(mock.Anything)
	w.mutagen.EXPECT().Baseline(mock.Anything, diagonalCode).Return(original, nil)
	w.detector.EXPECT().Describe(mock.Anything, original).Return(adapter.Description{Text: "Empty."}, nil)
	w.detector.EXPECT().Localize(mock.Anything, original, []string(nil)).Return(nil, nil)
	w.mapper.EXPECT().IdentifyFeatures(mock.Anything, original, []m.Mutant(nil), []m.Detection(nil)).Return(m.FeatureMap{}, nil)
	w.store.EXPECT().Save(mock.Anything, "figure-01234567", mock.Anything).Return(nil)
	w.ui.EXPECT().DisplayMapCompleted(mock.Anything)

	require.NoError(t, w.workflow().Map(context.Background(), domain.MapArgs{Path: figureSource.Path}))
}

func TestWorkflow_Map_BaselineFailure(t *testing.T) {
	w := newWorkflowMocks(t)
	failure := &adapter.RenderFailure{Diagnostic: "! Undefined control sequence."}

	expectLoad(w, diagonalCode)
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(nil, nil)
	w.ui.EXPECT().DisplayMapStarted(mock.Anything)
	w.mutagen.EXPECT().Baseline(mock.Anything, diagonalCode).Return(nil, failure)

	err := w.workflow().Map(context.Background(), domain.MapArgs{Path: figureSource.Path})

	var target *adapter.RenderFailure
	assert.ErrorAs(t, err, &target)
}

func TestWorkflow_Map_NoDetector(t *testing.T) {
	w := newWorkflowMocks(t)
	original := image.NewRGBA(image.Rect(0, 0, 4, 4))

	expectLoad(w, diagonalCode)
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.mutagen.EXPECT().Candidates(diagonalCode).Return(nil, nil)
	w.ui.EXPECT().DisplayMapStarted(mock.Anything)
	w.mutagen.EXPECT().Baseline(mock.Anything, diagonalCode).Return(original, nil)

	wf := domain.NewWorkflow(w.fs, w.store, w.ui, nil, w.embedder, w.mutagen, w.mapper)

	err := wf.Map(context.Background(), domain.MapArgs{Path: figureSource.Path})
	assert.ErrorIs(t, err, domain.ErrNoDetector)
}

func TestWorkflow_Map_NotSingleDocument(t *testing.T) {
	w := newWorkflowMocks(t)

	w.fs.EXPECT().Get([]m.Path{"examples/..."}).Return([]m.Source{figureSource, figureSource}, nil)

	err := w.workflow().Map(context.Background(), domain.MapArgs{Path: "examples/..."})
	assert.ErrorContains(t, err, "expected one .tex document")
}

func expectRestore(w workflowMocks, id string) {
	w.store.EXPECT().Load(mock.Anything, id).Return(m.Artifact{
		Code:       diagonalCode,
		Features:   diagonalMap,
		Embeddings: [][]float32{{1, 0}},
	}, nil)
}

func TestWorkflow_Annotate(t *testing.T) {
	w := newWorkflowMocks(t)
	want := "%diagonal line\n" + diagonalCode

	expectRestore(w, "figure")
	w.fs.EXPECT().WriteFile(m.Path("out.tex"), []byte(diagonalCode), mock.Anything).Return(nil)
	w.ui.EXPECT().DisplayCode(diagonalCode)

	// a single feature covers every offset, so nothing is inserted
	err := w.workflow().Annotate(context.Background(), domain.AnnotateArgs{
		ID:      "figure",
		Options: domain.DefaultAnnotateOptions(),
		Output:  "out.tex",
	})
	require.NoError(t, err)

	w2 := newWorkflowMocks(t)
	expectRestore(w2, "figure")
	w2.ui.EXPECT().DisplayCode(want)

	opts := domain.DefaultAnnotateOptions()
	opts.SuppressGlobal = false

	require.NoError(t, w2.workflow().Annotate(context.Background(), domain.AnnotateArgs{ID: "figure", Options: opts}))
}

func TestWorkflow_Annotate_NotFound(t *testing.T) {
	w := newWorkflowMocks(t)

	w.store.EXPECT().Load(mock.Anything, "missing").Return(m.Artifact{}, adapter.ErrArtifactNotFound)

	err := w.workflow().Annotate(context.Background(), domain.AnnotateArgs{ID: "missing"})
	assert.ErrorIs(t, err, adapter.ErrArtifactNotFound)
}

func TestWorkflow_Query(t *testing.T) {
	w := newWorkflowMocks(t)

	expectRestore(w, "figure")
	w.embedder.EXPECT().Embed(mock.Anything, "diagonal").Return([]float32{1, 0}, nil)
	w.embedder.EXPECT().Similarity([]float32{1, 0}, []float32{1, 0}).Return(1)
	w.ui.EXPECT().DisplayQueryResults("diagonal", mock.MatchedBy(func(results []m.QueryResult) bool {
		return len(results) == 1 && results[0].Label == "diagonal line"
	}))
	w.ui.EXPECT().DisplayCode("%<\n" + diagonalCode + "%>\n")

	err := w.workflow().Query(context.Background(), domain.QueryArgs{
		ID:        "figure",
		Text:      "diagonal",
		Top:       3,
		Highlight: true,
		Options:   domain.DefaultQueryOptions(),
	})
	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	w := newWorkflowMocks(t)

	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close()
	w.store.EXPECT().List(mock.Anything).Return([]string{"a", "b"}, nil)
	w.ui.EXPECT().DisplayArtifacts([]string{"a", "b"}).Return(nil)

	require.NoError(t, w.workflow().View(context.Background(), domain.ViewArgs{}))

	w2 := newWorkflowMocks(t)
	artifact := m.Artifact{Code: diagonalCode}

	w2.ui.EXPECT().Start(mock.Anything).Return(nil)
	w2.ui.EXPECT().Close()
	w2.store.EXPECT().Load(mock.Anything, "a").Return(artifact, nil)
	w2.ui.EXPECT().DisplayArtifact("a", artifact).Return(nil)

	require.NoError(t, w2.workflow().View(context.Background(), domain.ViewArgs{ID: "a"}))
}
