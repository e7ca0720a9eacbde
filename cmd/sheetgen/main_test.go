package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestGenerate(t *testing.T) {
	img := Generate(false)
	assert.Equal(t, image.Rect(0, 0, 800, 400), img.Bounds())

	// every cell holds a figure: the torso centre is opaque
	for row := 0; row < rows; row++ {
		for f := 0; f < frames; f++ {
			c := img.NRGBAAt(f*frameSize+50, row*frameSize+50)
			assert.NotZero(t, c.A, "row %d frame %d", row, f)
		}
	}
	// corners stay transparent
	assert.Zero(t, img.NRGBAAt(0, 0).A)
	assert.Zero(t, img.NRGBAAt(799, 399).A)
}

func TestGenerateOutline(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	src.Set(2, 2, colornames.White)

	out := GenerateOutline(src, 1, colornames.Red)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			near := x >= 1 && x <= 3 && y >= 1 && y <= 3 && !(x == 2 && y == 2)
			assert.Equal(t, near, out.NRGBAAt(x, y).A != 0, "(%d,%d)", x, y)
		}
	}
}
