package domain

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	white := uniform(4, 4, color.White)
	gray := uniform(4, 4, color.Gray{Y: 245})

	tests := []struct {
		name string
		a, b image.Image
		want float64
	}{
		{name: "identical", a: white, b: uniform(4, 4, color.White), want: 0},
		{name: "uniform shift", a: white, b: gray, want: 3 * 100.0 / 4},
		{name: "empty crops", a: image.NewRGBA(image.Rect(0, 0, 0, 0)), b: image.NewRGBA(image.Rect(3, 3, 3, 3)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMSE_SymmetricAndOffsetIndependent(t *testing.T) {
	a := uniform(10, 10, color.White)
	a.Set(2, 3, black)

	b := uniform(10, 10, color.White)

	ab, err := MSE(a, b)
	require.NoError(t, err)

	ba, err := MSE(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)

	shifted, err := MSE(Crop(a, image.Rect(2, 3, 4, 5)), Crop(b, image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	assert.InDelta(t, 3*255.0*255.0/16, shifted, 1e-9)
}

func TestMSE_SizeMismatch(t *testing.T) {
	_, err := MSE(uniform(2, 2, color.White), uniform(3, 2, color.White))
	assert.ErrorIs(t, err, ErrCropSizeMismatch)
}

func TestCrop(t *testing.T) {
	img := uniform(10, 10, color.White)

	got := Crop(img, image.Rect(5, 5, 20, 20))
	assert.Equal(t, image.Rect(5, 5, 10, 10), got.Bounds())

	got = Crop(img, image.Rect(20, 20, 30, 30))
	assert.True(t, got.Bounds().Empty())
}

type opaqueImage struct {
	image.Image
}

func TestCrop_WithoutSubImage(t *testing.T) {
	src := uniform(6, 6, color.White)
	src.Set(4, 4, red)

	got := Crop(opaqueImage{src}, image.Rect(3, 3, 6, 6))

	assert.Equal(t, image.Rect(0, 0, 3, 3), got.Bounds())
	assert.Equal(t, color.NRGBAModel.Convert(red), color.NRGBAModel.Convert(got.At(1, 1)))
}
