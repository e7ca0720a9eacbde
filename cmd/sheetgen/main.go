// Command sheetgen writes a placeholder animation sheet: eight frames per row
// and four rows (bottom-up: run left, run right, idle left, idle right).
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	frameSize = 100
	frames    = 8
	rows      = 4
)

var (
	skin      = color.NRGBA{R: 240, G: 200, B: 160, A: 255}
	pants     = color.NRGBA{R: 50, G: 50, B: 70, A: 255}
	runShirt  = color.NRGBA{R: 200, G: 60, B: 60, A: 255}
	idleShirt = color.NRGBA{R: 60, G: 110, B: 200, A: 255}
)

func main() {
	out := flag.String("out", "assets/animation_sheet.png", "output png path")
	labels := flag.Bool("labels", false, "print the frame index in each cell")
	outline := flag.Int("outline", 0, "outline thickness in pixels (0 disables)")
	flag.Parse()

	img := Generate(*labels)
	if *outline > 0 {
		draw.Draw(img, img.Bounds(), GenerateOutline(img, *outline, colornames.Black), image.Point{}, draw.Over)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("sheetgen: wrote %s", *out)
}

// Generate paints every cell of the sheet.
func Generate(labels bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frameSize*frames, frameSize*rows))
	for action := 0; action < rows; action++ {
		// sheet rows are addressed from the bottom
		row := rows - 1 - action
		for f := 0; f < frames; f++ {
			cell := image.Pt(f*frameSize, row*frameSize)
			drawFigure(img, cell, action, f)
			if labels {
				drawLabel(img, cell, strconv.Itoa(f))
			}
		}
	}
	return img
}

func drawFigure(img draw.Image, o image.Point, action, frame int) {
	facing := -1
	if action == 1 || action == 3 {
		facing = 1
	}
	running := action < 2
	shirt := idleShirt
	if running {
		shirt = runShirt
	}

	phase := float64(frame) / frames * 2 * math.Pi
	bob := int(2 * math.Sin(phase))
	swing, arm := 0, 0
	if running {
		swing = int(12 * math.Sin(phase))
		arm = int(10 * math.Cos(phase))
	}

	fill(img, o, 38, 12+bob, 62, 36+bob, skin)
	eye := 50 + facing*6
	fill(img, o, eye-2, 20+bob, eye+2, 24+bob, colornames.Black)
	fill(img, o, 36, 36+bob, 64, 66+bob, shirt)
	fill(img, o, 40+swing, 66, 48+swing, 92, pants)
	fill(img, o, 52-swing, 66, 60-swing, 92, pants)
	fill(img, o, 30+arm, 40+bob, 36+arm, 60+bob, skin)
	fill(img, o, 64-arm, 40+bob, 70-arm, 60+bob, skin)
}

func fill(img draw.Image, o image.Point, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1, y1).Add(o).Intersect(image.Rect(o.X, o.Y, o.X+frameSize, o.Y+frameSize))
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawLabel(img draw.Image, o image.Point, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(o.X+4, o.Y+frameSize-4),
	}
	d.DrawString(s)
}

// GenerateOutline returns the pixels within thickness of an opaque pixel of
// src that are themselves transparent, painted with col.
func GenerateOutline(src *image.NRGBA, thickness int, col color.Color) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(b)

	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return src.NRGBAAt(x+b.Min.X, y+b.Min.Y).A != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := max(0, y-thickness); yy <= min(h-1, y+thickness) && !found; yy++ {
				for xx := max(0, x-thickness); xx <= min(w-1, x+thickness); xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.Set(x+b.Min.X, y+b.Min.Y, col)
			}
		}
	}
	return out
}
