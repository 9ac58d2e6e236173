package domain

import (
	"context"
	"fmt"
	"image"
	"sort"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// Mapper ranks mutants against detected features.
type Mapper interface {
	// IdentifyFeatures scores every mutant inside every detection box and returns
	// the feature map. Labels keep detection order; a label detected twice gets the
	// mappings of both boxes in one list.
	IdentifyFeatures(ctx context.Context, original image.Image, mutants []m.Mutant, detections []m.Detection) (m.FeatureMap, error)
}

type mapper struct {
	opts options
}

// NewMapper creates a Mapper. Detections are scored concurrently.
func NewMapper(opts ...Option) Mapper {
	return &mapper{opts: newOptions(opts...)}
}

func (mp *mapper) IdentifyFeatures(
	ctx context.Context,
	original image.Image,
	mutants []m.Mutant,
	detections []m.Detection,
) (m.FeatureMap, error) {
	for i, d := range detections {
		if err := d.Box.Validate(); err != nil {
			return nil, fmt.Errorf("detection %d (%s): %w", i, d.Label, err)
		}
	}

	ranked := make([][]m.ScoredMapping, len(detections))

	var g errgroup.Group

	g.SetLimit(mp.opts.workers)

	for i, d := range detections {
		g.Go(func() error {
			scored, err := mp.rank(ctx, original, mutants, d)
			if err != nil {
				return err
			}

			ranked[i] = scored

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeFeatures(detections, ranked), nil
}

// rank scores each mutant inside the detection box. Mutants leaving the box
// untouched are not evidence and are left out.
func (mp *mapper) rank(ctx context.Context, original image.Image, mutants []m.Mutant, d m.Detection) ([]m.ScoredMapping, error) {
	base := Crop(original, d.Box.Rect(original.Bounds()))
	scored := make([]m.ScoredMapping, 0, len(mutants))

	for _, mt := range mutants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score, err := MSE(base, Crop(mt.Image, d.Box.Rect(mt.Image.Bounds())))
		if err != nil {
			mp.opts.logger.Warn("mutant skipped", "label", d.Label, "anchor", mt.Anchor, "error", err)
			continue
		}

		if score == 0 {
			continue
		}

		spans := make([]m.Span, len(mt.Spans))
		copy(spans, mt.Spans)

		scored = append(scored, m.ScoredMapping{
			Mapping: m.CodeImageMapping{Spans: spans, Zone: d.Box},
			Score:   score,
		})
	}

	sortByScore(scored)

	mp.opts.logger.Debug("feature ranked", "label", d.Label, "box", d.Box, "mappings", len(scored))

	return scored, nil
}

func mergeFeatures(detections []m.Detection, ranked [][]m.ScoredMapping) m.FeatureMap {
	features := make(m.FeatureMap, 0, len(detections))
	index := make(map[string]int, len(detections))

	for i, d := range detections {
		pos, ok := index[d.Label]
		if !ok {
			index[d.Label] = len(features)
			features = append(features, m.Feature{Label: d.Label, Mappings: ranked[i]})

			continue
		}

		merged := append(features[pos].Mappings, ranked[i]...)
		sortByScore(merged)
		features[pos].Mappings = merged
	}

	return features
}

// sortByScore orders mappings by decreasing score. Ties keep their order.
func sortByScore(mappings []m.ScoredMapping) {
	sort.SliceStable(mappings, func(i, j int) bool {
		return mappings[i].Score > mappings[j].Score
	})
}
