package domain

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync/atomic"

	"github.com/mouse-blink/vifmap/internal/adapter"
)

const (
	canvasWidth  = 40
	canvasHeight = 20
	wideWidth    = 50
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// sketchRenderer rasterizes a handful of known TikZ statements onto a white canvas:
// a diagonal in [0,10)², a red square at x [30,40) y [0,10) and a blue one below it.
// A bounding box path widens the canvas. Code missing required fails like a LaTeX error.
type sketchRenderer struct {
	required string
	calls    atomic.Int64
}

func (r *sketchRenderer) Render(ctx context.Context, code string) (image.Image, error) {
	r.calls.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.required != "" && !strings.Contains(code, r.required) {
		return nil, &adapter.RenderFailure{Diagnostic: "! Undefined control sequence."}
	}

	width := canvasWidth
	if strings.Contains(code, `\path[use as bounding box]`) {
		width = wideWidth
	}

	img := image.NewRGBA(image.Rect(0, 0, width, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if strings.Contains(code, `\draw (0,0) -- (1,1);`) || strings.Contains(code, `\draw (0,0) -- (A);`) {
		for i := 0; i < 10; i++ {
			img.Set(i, i, black)
		}
	}

	if strings.Contains(code, `\fill[red]`) {
		draw.Draw(img, image.Rect(30, 0, 40, 10), image.NewUniform(red), image.Point{}, draw.Src)
	}

	if strings.Contains(code, `\fill[blue]`) {
		draw.Draw(img, image.Rect(30, 10, 40, 20), image.NewUniform(blue), image.Point{}, draw.Src)
	}

	return img, nil
}

// figureCode draws every shape the sketch renderer knows, inside a bounding box.
const figureCode = `\begin{tikzpicture}
\coordinate (A) at (1,1);
\draw (0,0) -- (A);
\fill[red] (3,0) rectangle (4,1);
\fill[blue] (3,1) rectangle (4,2);
\path[use as bounding box] (0,0) rectangle (5,2);
\end{tikzpicture}`

// diagonalScore is the MSE of a 10x10 crop losing its 10 black diagonal pixels.
const diagonalScore = 10 * 3 * 255.0 * 255.0 / (10 * 10 * 4)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	return img
}
