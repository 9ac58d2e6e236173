package domain

import (
	"context"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/mouse-blink/vifmap/internal/adapter"
	m "github.com/mouse-blink/vifmap/internal/model"
)

const (
	// DefaultCommentMarker starts a LaTeX comment.
	DefaultCommentMarker = "%"
	// DefaultSharpness is the exponent applied to label similarities in Query.
	DefaultSharpness = 10.0
	// DefaultEpsilon guards the min-max normalization against equal similarities.
	DefaultEpsilon = 1e-9
	// HighlightOpen and HighlightClose surround highlighted spans.
	HighlightOpen  = "%<"
	HighlightClose = "%>"
)

// AnnotateOptions controls the comments inserted by Annotate.
type AnnotateOptions struct {
	// Marker starts every inserted comment line.
	Marker string
	// MaxLabels is the number of best labels named per comment.
	MaxLabels int
	// SuppressGlobal skips offsets attached to every feature of the map.
	SuppressGlobal bool
	// IncludeDescription prepends the image description as a comment.
	IncludeDescription bool
}

// DefaultAnnotateOptions returns one label per comment with global spans suppressed.
func DefaultAnnotateOptions() AnnotateOptions {
	return AnnotateOptions{
		Marker:         DefaultCommentMarker,
		MaxLabels:      1,
		SuppressGlobal: true,
	}
}

// QueryOptions controls the re-ranking done by Query.
type QueryOptions struct {
	Sharpness float64
	Epsilon   float64
}

// DefaultQueryOptions returns the sharpening exponent 10 and epsilon 1e-9.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Sharpness: DefaultSharpness, Epsilon: DefaultEpsilon}
}

// MappedResult bundles a rendered image, its normalized code, the feature map and
// one embedding per feature label. It is read-only after construction.
type MappedResult struct {
	image       image.Image
	code        string
	description string
	features    m.FeatureMap
	embeddings  [][]float32
	model       string
	embedder    adapter.Embedder
}

// NewMappedResult embeds the labels of features with embedder.
func NewMappedResult(
	ctx context.Context,
	embedder adapter.Embedder,
	img image.Image,
	code, description string,
	features m.FeatureMap,
) (*MappedResult, error) {
	var embeddings [][]float32

	if len(features) > 0 {
		var err error

		embeddings, err = embedder.EmbedBatch(ctx, features.Labels())
		if err != nil {
			return nil, fmt.Errorf("failed to embed labels: %w", err)
		}

		if len(embeddings) != len(features) {
			return nil, fmt.Errorf("%w: %d embeddings for %d features", ErrEmbeddingMismatch, len(embeddings), len(features))
		}
	}

	return &MappedResult{
		image:       img,
		code:        code,
		description: description,
		features:    features,
		embeddings:  embeddings,
		model:       adapter.EmbedderName(embedder),
		embedder:    embedder,
	}, nil
}

// Restore rebuilds a MappedResult from a stored artifact without calling the embedder.
// The artifact must have been embedded by the same model as embedder when both
// names are known.
func Restore(artifact m.Artifact, embedder adapter.Embedder) (*MappedResult, error) {
	if len(artifact.Embeddings) != len(artifact.Features) {
		return nil, fmt.Errorf("%w: %d embeddings for %d features",
			ErrEmbeddingMismatch, len(artifact.Embeddings), len(artifact.Features))
	}

	name := adapter.EmbedderName(embedder)
	if artifact.EmbeddingModel != "" && name != "" && artifact.EmbeddingModel != name {
		return nil, fmt.Errorf("%w: labels embedded with %s, querying with %s",
			ErrEmbeddingMismatch, artifact.EmbeddingModel, name)
	}

	return &MappedResult{
		image:       artifact.Image,
		code:        artifact.Code,
		description: artifact.Description,
		features:    artifact.Features,
		embeddings:  artifact.Embeddings,
		model:       artifact.EmbeddingModel,
		embedder:    embedder,
	}, nil
}

// Artifact returns the persistable form of the result.
func (r *MappedResult) Artifact() m.Artifact {
	return m.Artifact{
		Image:          r.image,
		Code:           r.code,
		Description:    r.description,
		Features:       r.features,
		Embeddings:     r.embeddings,
		EmbeddingModel: r.model,
	}
}

// Image returns the rendered original.
func (r *MappedResult) Image() image.Image { return r.image }

// Code returns the normalized code the spans refer to.
func (r *MappedResult) Code() string { return r.code }

// Description returns the detector's description of the image.
func (r *MappedResult) Description() string { return r.description }

// Features returns the feature map.
func (r *MappedResult) Features() m.FeatureMap { return r.features }

type labelScore struct {
	label string
	score float64
}

// Annotate returns the code with a comment naming the best labels inserted before
// the first span of every mapping.
func (r *MappedResult) Annotate(opts AnnotateOptions) string {
	if opts.Marker == "" {
		opts.Marker = DefaultCommentMarker
	}

	if opts.MaxLabels <= 0 {
		opts.MaxLabels = 1
	}

	// offset -> label -> best score at that offset
	index := make(map[int]map[string]float64)
	distinct := make(map[string]struct{}, len(r.features))

	for _, f := range r.features {
		distinct[f.Label] = struct{}{}

		for _, sm := range f.Mappings {
			if len(sm.Mapping.Spans) == 0 {
				continue
			}

			offset := sm.Mapping.Spans[0].Start

			labels, ok := index[offset]
			if !ok {
				labels = make(map[string]float64)
				index[offset] = labels
			}

			if best, seen := labels[f.Label]; !seen || sm.Score > best {
				labels[f.Label] = sm.Score
			}
		}
	}

	offsets := make([]int, 0, len(index))
	for offset := range index {
		offsets = append(offsets, offset)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(offsets)))

	annotated := r.code

	for _, offset := range offsets {
		labels := index[offset]
		if opts.SuppressGlobal && len(labels) == len(distinct) {
			continue
		}

		if offset < 0 || offset > len(annotated) {
			continue
		}

		comment := opts.Marker + strings.Join(bestLabels(labels, opts.MaxLabels), ", ") + "\n"
		annotated = annotated[:offset] + comment + annotated[offset:]
	}

	if opts.IncludeDescription && r.description != "" {
		annotated = opts.Marker + r.description + "\n" + annotated
	}

	return annotated
}

// bestLabels orders labels by decreasing score, then by name, and keeps n of them.
func bestLabels(labels map[string]float64, n int) []string {
	ranked := make([]labelScore, 0, len(labels))
	for label, score := range labels {
		ranked = append(ranked, labelScore{label: label, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].label < ranked[j].label
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	names := make([]string, 0, len(ranked))
	for _, ls := range ranked {
		names = append(names, ls.label)
	}

	return names
}

// Similarities returns, for each feature label, the similarity to the query vector
// min-max normalized over the label set. When all similarities are equal every
// value is 0.
func (r *MappedResult) Similarities(query []float32, epsilon float64) []float64 {
	sims := make([]float64, len(r.embeddings))
	if len(sims) == 0 {
		return sims
	}

	lo, hi := math.Inf(1), math.Inf(-1)

	for i, e := range r.embeddings {
		sims[i] = r.embedder.Similarity(query, e)
		lo = math.Min(lo, sims[i])
		hi = math.Max(hi, sims[i])
	}

	for i := range sims {
		sims[i] = (sims[i] - lo) / (hi - lo + epsilon)
	}

	return sims
}

// Query re-ranks every stored mapping by score × similarity(label)^Sharpness, where
// the similarity between text and the label is min-max normalized over all labels.
func (r *MappedResult) Query(ctx context.Context, text string, opts QueryOptions) ([]m.QueryResult, error) {
	if len(r.features) == 0 {
		return nil, nil
	}

	if opts.Sharpness == 0 {
		opts.Sharpness = DefaultSharpness
	}

	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultEpsilon
	}

	query, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	for i, e := range r.embeddings {
		if len(e) != len(query) {
			return nil, fmt.Errorf("%w: query has %d dimensions, label %q has %d",
				ErrEmbeddingMismatch, len(query), r.features[i].Label, len(e))
		}
	}

	sims := r.Similarities(query, opts.Epsilon)

	var results []m.QueryResult

	for i, f := range r.features {
		weight := math.Pow(sims[i], opts.Sharpness)

		for _, sm := range f.Mappings {
			results = append(results, m.QueryResult{
				Label:      f.Label,
				Similarity: sims[i],
				Mapping:    sm.Mapping,
				Score:      sm.Score,
				Adjusted:   sm.Score * weight,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Adjusted > results[j].Adjusted
	})

	return results, nil
}

// Highlight returns the code with an openMarker line before and a closeMarker line
// after every span of mappings. Overlapping spans are merged first.
func (r *MappedResult) Highlight(mappings []m.CodeImageMapping, openMarker, closeMarker string) string {
	var spans []m.Span

	for _, mp := range mappings {
		for _, s := range mp.Spans {
			if s.Valid(len(r.code)) {
				spans = append(spans, s)
			}
		}
	}

	if len(spans) == 0 {
		return r.code
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	merged := []m.Span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}

		merged = append(merged, s)
	}

	highlighted := r.code
	for i := len(merged) - 1; i >= 0; i-- {
		s := merged[i]
		highlighted = highlighted[:s.End] + closeMarker + "\n" + highlighted[s.End:]
		highlighted = highlighted[:s.Start] + openMarker + "\n" + highlighted[s.Start:]
	}

	return highlighted
}
