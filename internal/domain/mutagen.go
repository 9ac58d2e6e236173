// Package domain contains the mutation-based localization engine: mutant
// generation, image scoring, feature mapping and the queryable mapped result.
package domain

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/vifmap/internal/adapter"
	"github.com/mouse-blink/vifmap/internal/domain/mutagens"
	m "github.com/mouse-blink/vifmap/internal/model"
)

// Generation is the outcome of validating the candidates of one document.
type Generation struct {
	Mutants  []m.Mutant
	Rejected int
}

// Mutagen turns scanner candidates into mutants that still render to an image of
// the original size.
type Mutagen interface {
	// Candidates returns the structural candidates and the line-level ones of
	// normalized code, without rendering.
	Candidates(code string) (structural, remaining []m.Candidate)
	// Baseline renders the unmodified code.
	Baseline(ctx context.Context, code string) (image.Image, error)
	// Generate renders every candidate and keeps the valid ones. On cancellation
	// it returns the mutants validated so far with the context error.
	Generate(ctx context.Context, code string, original image.Image) (Generation, error)
}

type mutagen struct {
	renderer adapter.Renderer
	opts     options
}

// NewMutagen creates a Mutagen rendering through renderer.
func NewMutagen(renderer adapter.Renderer, opts ...Option) Mutagen {
	return &mutagen{
		renderer: renderer,
		opts:     newOptions(opts...),
	}
}

func (mg *mutagen) Candidates(code string) ([]m.Candidate, []m.Candidate) {
	code = mutagens.Normalize(code)

	return mutagens.Scan(code), mutagens.FindRemaining(code)
}

func (mg *mutagen) Baseline(ctx context.Context, code string) (image.Image, error) {
	img, err := mg.renderer.Render(ctx, mutagens.Normalize(code))
	if err != nil {
		return nil, fmt.Errorf("failed to render original: %w", err)
	}

	return img, nil
}

func (mg *mutagen) Generate(ctx context.Context, code string, original image.Image) (Generation, error) {
	code = mutagens.Normalize(code)

	renderer := mg.renderer
	if mg.opts.cacheSize > 0 {
		cached, err := adapter.NewCachedRenderer(renderer, mg.opts.cacheSize)
		if err != nil {
			return Generation{}, err
		}

		renderer = cached
	}

	size := original.Bounds().Size()
	tracker := &progressTracker{report: mg.opts.progress}

	structural := mutagens.Scan(code)
	tracker.schedule(len(structural))

	valid, err := mg.validate(ctx, renderer, code, size, structural, tracker)
	gen := Generation{Mutants: valid, Rejected: len(structural) - len(valid)}

	if err != nil {
		return gen, err
	}

	anchors := make(map[int]struct{}, len(valid))
	for _, mt := range valid {
		anchors[mt.Anchor] = struct{}{}
	}

	var remaining []m.Candidate

	for _, c := range mutagens.FindRemaining(code) {
		if _, ok := anchors[c.Anchor()]; !ok {
			remaining = append(remaining, c)
		}
	}

	tracker.schedule(len(remaining))

	extra, err := mg.validate(ctx, renderer, code, size, remaining, tracker)
	gen.Mutants = append(gen.Mutants, extra...)
	gen.Rejected += len(remaining) - len(extra)

	mg.opts.logger.Info("mutants generated",
		"valid", len(gen.Mutants), "rejected", gen.Rejected, "structural", len(structural), "remaining", len(remaining))

	return gen, err
}

// validate renders candidates on a bounded pool. Each task only writes its own slot,
// so the result keeps candidate order.
func (mg *mutagen) validate(
	ctx context.Context,
	renderer adapter.Renderer,
	code string,
	size image.Point,
	candidates []m.Candidate,
	tracker *progressTracker,
) ([]m.Mutant, error) {
	slots := make([]*m.Mutant, len(candidates))

	var g errgroup.Group

	g.SetLimit(mg.opts.workers)

	for i, c := range candidates {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			defer tracker.finish()

			mutant, err := mg.mutate(ctx, renderer, code, size, c)
			if err != nil {
				return err
			}

			slots[i] = mutant

			return nil
		})
	}

	err := g.Wait()

	mutants := make([]m.Mutant, 0, len(candidates))

	for _, mt := range slots {
		if mt != nil {
			mutants = append(mutants, *mt)
		}
	}

	if err != nil {
		return mutants, err
	}

	return mutants, ctx.Err()
}

// mutate returns nil without error when the candidate is rejected.
func (mg *mutagen) mutate(
	ctx context.Context,
	renderer adapter.Renderer,
	code string,
	size image.Point,
	c m.Candidate,
) (*m.Mutant, error) {
	if ctx.Err() != nil {
		return nil, nil
	}

	mutated, err := mutagens.RemoveSpans(code, c.Spans)
	if err != nil {
		return nil, fmt.Errorf("candidate at %d: %w", c.Anchor(), err)
	}

	img, err := renderer.Render(ctx, mutated)
	if err != nil {
		mg.opts.logger.Debug("candidate dropped", "anchor", c.Anchor(), "strategy", c.Strategy, "error", err)
		return nil, nil
	}

	if got := img.Bounds().Size(); got != size {
		mg.opts.logger.Debug("candidate dropped", "anchor", c.Anchor(), "strategy", c.Strategy,
			"size", got, "want", size)

		return nil, nil
	}

	return &m.Mutant{
		Spans:    c.Spans,
		Strategy: c.Strategy,
		Code:     mutated,
		Image:    img,
		Original: code,
		Anchor:   c.Anchor(),
	}, nil
}

type progressTracker struct {
	report ProgressFunc
	done   atomic.Int64
	total  atomic.Int64
}

func (p *progressTracker) schedule(n int) {
	total := p.total.Add(int64(n))
	if p.report != nil && n > 0 {
		p.report(int(p.done.Load()), int(total))
	}
}

func (p *progressTracker) finish() {
	done := p.done.Add(1)
	if p.report != nil {
		p.report(int(done), int(p.total.Load()))
	}
}
