package domain

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the part of img inside r, clipped to the image bounds.
func Crop(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())

	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)

	return dst
}

// MSE is the mean squared error over the R, G, B and A channels (8-bit,
// non-premultiplied) of two crops of the same size. Empty crops score 0.
func MSE(a, b image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return 0, fmt.Errorf("%w: %v vs %v", ErrCropSizeMismatch, ab.Size(), bb.Size())
	}

	if ab.Empty() {
		return 0, nil
	}

	var sum float64

	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)

			sum += sq(ca.R, cb.R) + sq(ca.G, cb.G) + sq(ca.B, cb.B) + sq(ca.A, cb.A)
		}
	}

	return sum / float64(ab.Dx()*ab.Dy()*4), nil
}

func sq(a, b uint8) float64 {
	d := float64(a) - float64(b)
	return d * d
}
