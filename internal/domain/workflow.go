package domain

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/vifmap/internal/adapter"
	"github.com/mouse-blink/vifmap/internal/controller"
	"github.com/mouse-blink/vifmap/internal/domain/mutagens"
	m "github.com/mouse-blink/vifmap/internal/model"
)

const idHashLen = 8

// ErrNoDetector is returned by Map when neither a detector nor a detections file is available.
var ErrNoDetector = errors.New("no detector configured and no detections file given")

// EstimateArgs selects the documents to estimate.
type EstimateArgs struct {
	Paths []m.Path
}

// MapArgs describes one mapping run.
type MapArgs struct {
	Path m.Path
	// ID names the stored artifact. Derived from the file name and hash when empty.
	ID string
	// Detections is an optional JSON file replacing the detector.
	Detections m.Path
	// Scale is the grid of the detections file boxes; 0 means pixels.
	Scale float64
}

// AnnotateArgs selects a stored artifact and how to comment it.
type AnnotateArgs struct {
	ID      string
	Options AnnotateOptions
	// Output receives the annotated code when set.
	Output m.Path
}

// QueryArgs describes a free-text query against a stored artifact.
type QueryArgs struct {
	ID        string
	Text      string
	Top       int
	Highlight bool
	Options   QueryOptions
}

// ViewArgs selects the artifact to browse. An empty ID lists the stored artifacts.
type ViewArgs struct {
	ID string
}

// Workflow drives the mapping engine for the command line.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Map(ctx context.Context, args MapArgs) error
	Annotate(ctx context.Context, args AnnotateArgs) error
	Query(ctx context.Context, args QueryArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ResultStore
	ui        controller.UI
	detector  adapter.Detector
	embedder  adapter.Embedder
	mutagen   Mutagen
	mapper    Mapper
	opts      options
}

// NewWorkflow wires the workflow. detector may be nil when every Map call passes a
// detections file.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ResultStore,
	ui controller.UI,
	detector adapter.Detector,
	embedder adapter.Embedder,
	mutagen Mutagen,
	mapper Mapper,
	opts ...Option,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		detector:  detector,
		embedder:  embedder,
		mutagen:   mutagen,
		mapper:    mapper,
		opts:      newOptions(opts...),
	}
}

func (w *workflow) Estimate(_ context.Context, args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	estimations, err := w.estimate(args.Paths)

	return w.ui.DisplayEstimation(estimations, err)
}

func (w *workflow) estimate(paths []m.Path) ([]m.Estimation, error) {
	sources, err := w.fsAdapter.Get(paths)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	estimations := make([]m.Estimation, 0, len(sources))

	for _, source := range sources {
		content, err := w.fsAdapter.ReadFile(source.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source.Path, err)
		}

		structural, remaining := w.mutagen.Candidates(string(content))
		estimations = append(estimations, m.Estimation{
			Source:     source,
			Structural: len(structural),
			Remaining:  len(remaining),
		})
	}

	return estimations, nil
}

func (w *workflow) Map(ctx context.Context, args MapArgs) error {
	source, code, err := w.load(args.Path)
	if err != nil {
		return err
	}

	id := args.ID
	if id == "" {
		id = artifactID(source)
	}

	if err := w.ui.Start(controller.WithMapMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	structural, remaining := w.mutagen.Candidates(code)
	w.ui.DisplayMapStarted(m.Estimation{Source: source, Structural: len(structural), Remaining: len(remaining)})

	original, err := w.mutagen.Baseline(ctx, code)
	if err != nil {
		return err
	}

	description, detections, err := w.detect(ctx, original, args)
	if err != nil {
		return err
	}

	w.opts.logger.Info("features detected", "source", source.Path, "detections", len(detections))

	var gen Generation
	if len(detections) > 0 {
		gen, err = w.mutagen.Generate(ctx, code, original)
		if err != nil {
			return fmt.Errorf("generate mutants: %w", err)
		}
	}

	features, err := w.mapper.IdentifyFeatures(ctx, original, gen.Mutants, detections)
	if err != nil {
		return fmt.Errorf("identify features: %w", err)
	}

	result, err := NewMappedResult(ctx, w.embedder, original, code, description, features)
	if err != nil {
		return err
	}

	if err := w.store.Save(ctx, id, result.Artifact()); err != nil {
		return fmt.Errorf("save %s: %w", id, err)
	}

	w.ui.DisplayMapCompleted(m.MapSummary{
		ID:          id,
		Source:      source,
		Description: description,
		Code:        code,
		Mutants:     len(gen.Mutants),
		Rejected:    gen.Rejected,
		Features:    features,
	})

	return nil
}

func (w *workflow) load(path m.Path) (m.Source, string, error) {
	sources, err := w.fsAdapter.Get([]m.Path{path})
	if err != nil {
		return m.Source{}, "", fmt.Errorf("get sources: %w", err)
	}

	if len(sources) != 1 {
		return m.Source{}, "", fmt.Errorf("expected one .tex document at %s, found %d", path, len(sources))
	}

	content, err := w.fsAdapter.ReadFile(sources[0].Path)
	if err != nil {
		return m.Source{}, "", fmt.Errorf("read %s: %w", sources[0].Path, err)
	}

	return sources[0], mutagens.Normalize(string(content)), nil
}

func (w *workflow) detect(ctx context.Context, original image.Image, args MapArgs) (string, []m.Detection, error) {
	if args.Detections != "" {
		raw, err := w.fsAdapter.ReadFile(args.Detections)
		if err != nil {
			return "", nil, fmt.Errorf("read detections: %w", err)
		}

		detections, err := adapter.ParseDetections(string(raw), original.Bounds(), args.Scale)
		if err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", args.Detections, err)
		}

		return "", detections, nil
	}

	if w.detector == nil {
		return "", nil, ErrNoDetector
	}

	description, err := w.detector.Describe(ctx, original)
	if err != nil {
		return "", nil, fmt.Errorf("describe image: %w", err)
	}

	detections, err := w.detector.Localize(ctx, original, description.Features)
	if err != nil {
		return "", nil, fmt.Errorf("localize features: %w", err)
	}

	return description.Text, detections, nil
}

func (w *workflow) restore(ctx context.Context, id string) (*MappedResult, error) {
	artifact, err := w.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}

	return Restore(artifact, w.embedder)
}

func (w *workflow) Annotate(ctx context.Context, args AnnotateArgs) error {
	result, err := w.restore(ctx, args.ID)
	if err != nil {
		return err
	}

	annotated := result.Annotate(args.Options)

	if args.Output != "" {
		if err := w.fsAdapter.WriteFile(args.Output, []byte(annotated), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", args.Output, err)
		}
	}

	w.ui.DisplayCode(annotated)

	return nil
}

func (w *workflow) Query(ctx context.Context, args QueryArgs) error {
	result, err := w.restore(ctx, args.ID)
	if err != nil {
		return err
	}

	results, err := result.Query(ctx, args.Text, args.Options)
	if err != nil {
		return err
	}

	if args.Top > 0 && len(results) > args.Top {
		results = results[:args.Top]
	}

	w.ui.DisplayQueryResults(args.Text, results)

	if args.Highlight && len(results) > 0 {
		mappings := make([]m.CodeImageMapping, 0, len(results))
		for _, r := range results {
			mappings = append(mappings, r.Mapping)
		}

		w.ui.DisplayCode(result.Highlight(mappings, HighlightOpen, HighlightClose))
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if args.ID == "" {
		ids, err := w.store.List(ctx)
		if err != nil {
			return fmt.Errorf("list artifacts: %w", err)
		}

		return w.ui.DisplayArtifacts(ids)
	}

	artifact, err := w.store.Load(ctx, args.ID)
	if err != nil {
		return fmt.Errorf("load %s: %w", args.ID, err)
	}

	return w.ui.DisplayArtifact(args.ID, artifact)
}

// artifactID derives "<file stem>-<hash prefix>" from a source.
func artifactID(source m.Source) string {
	stem := strings.TrimSuffix(filepath.Base(string(source.Path)), filepath.Ext(string(source.Path)))
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, stem)

	hash := source.Hash
	if len(hash) > idHashLen {
		hash = hash[:idHashLen]
	}

	if hash == "" {
		return stem
	}

	return stem + "-" + hash
}
