package model

import (
	"fmt"
	"image"
	"math"
)

// Path represents a file system path.
type Path string

// Source is a TikZ/LaTeX document selected for mapping.
type Source struct {
	Path Path
	Hash string
}

// Span is a half-open character-offset interval [Start, End) into normalized code.
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Valid reports whether the span lies inside code of length n.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// Overlaps reports whether two spans share at least one character.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Box2D is a bounding rectangle in image pixel space.
type Box2D struct {
	Left   float64 `yaml:"left" json:"left"`
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// Validate rejects boxes that cannot describe a pixel region.
func (b Box2D) Validate() error {
	for _, v := range []float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate in %v", ErrInvalidBox, b)
		}

		if v < 0 {
			return fmt.Errorf("%w: negative coordinate in %v", ErrInvalidBox, b)
		}
	}

	if b.Right < b.Left || b.Bottom < b.Top {
		return fmt.Errorf("%w: inverted corners in %v", ErrInvalidBox, b)
	}

	return nil
}

// Rect converts the box to integer pixel coordinates (truncated) clipped to bounds.
func (b Box2D) Rect(bounds image.Rectangle) image.Rectangle {
	r := image.Rect(int(b.Left), int(b.Top), int(b.Right), int(b.Bottom))
	return r.Add(bounds.Min).Intersect(bounds)
}

func (b Box2D) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", b.Left, b.Top, b.Right, b.Bottom)
}
