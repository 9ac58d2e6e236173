package adapter

import (
	"context"
	"errors"
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minio/highwayhash"
)

var renderCacheKey = []byte("0123456789ABCDEF0123456789ABCDEF")

type renderOutcome struct {
	img image.Image
	err error
}

// CachedRenderer memoizes renders by a HighwayHash of the code. Successful images and
// toolchain failures are cached; timeouts and cancellations are not. A cache must
// only serve variants of a single document.
type CachedRenderer struct {
	next  Renderer
	cache *lru.Cache[[highwayhash.Size]byte, renderOutcome]
}

// NewCachedRenderer wraps next with an LRU cache holding up to size outcomes.
func NewCachedRenderer(next Renderer, size int) (*CachedRenderer, error) {
	cache, err := lru.New[[highwayhash.Size]byte, renderOutcome](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	return &CachedRenderer{next: next, cache: cache}, nil
}

// Render returns the cached outcome for code or delegates to the wrapped renderer.
func (c *CachedRenderer) Render(ctx context.Context, code string) (image.Image, error) {
	key := highwayhash.Sum([]byte(code), renderCacheKey)
	if outcome, ok := c.cache.Get(key); ok {
		return outcome.img, outcome.err
	}

	img, err := c.next.Render(ctx, code)

	var failure *RenderFailure
	if err == nil || errors.As(err, &failure) {
		c.cache.Add(key, renderOutcome{img: img, err: err})
	}

	return img, err
}

// Len returns the number of cached outcomes.
func (c *CachedRenderer) Len() int {
	return c.cache.Len()
}
