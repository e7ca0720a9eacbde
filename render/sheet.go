// Package render draws boy.Clips of a sprite sheet with ebiten.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boy/boy"
)

// Sheet is a sprite sheet bound to the screen of the current frame. Clip
// coordinates count rows from the bottom of the sheet and destinations use a
// y-up world whose origin is the bottom-left corner of the screen.
type Sheet struct {
	img          *ebiten.Image
	target       *ebiten.Image
	screenHeight float64
}

var _ boy.Sheet = (*Sheet)(nil)

func NewSheet(img *ebiten.Image, screenHeight int) *Sheet {
	return &Sheet{img: img, screenHeight: float64(screenHeight)}
}

// SetTarget selects the image the next draws land on. Call it at the top of
// every Draw.
func (s *Sheet) SetTarget(dst *ebiten.Image) {
	s.target = dst
}

func (s *Sheet) ClipDraw(c boy.Clip, x, y, w, h float64) {
	s.draw(c, 0, x, y, w, h)
}

// ClipDrawRotated rotates counter-clockwise by angle radians around the
// destination centre.
func (s *Sheet) ClipDrawRotated(c boy.Clip, angle, x, y, w, h float64) {
	s.draw(c, angle, x, y, w, h)
}

func (s *Sheet) draw(c boy.Clip, angle, x, y, w, h float64) {
	if s == nil || s.img == nil || s.target == nil || c.W <= 0 || c.H <= 0 {
		return
	}
	src := sourceRect(c, s.img.Bounds().Dy())
	if !src.In(s.img.Bounds()) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = placement(c, angle, x, y, w, h, s.screenHeight)
	op.Filter = ebiten.FilterNearest
	s.target.DrawImage(s.img.SubImage(src).(*ebiten.Image), op)
}

// Close releases the sheet's GPU memory.
func (s *Sheet) Close() error {
	if s != nil && s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	return nil
}

// sourceRect flips a bottom-origin clip into the sheet's top-origin pixels.
func sourceRect(c boy.Clip, sheetHeight int) image.Rectangle {
	top := sheetHeight - c.Y - c.H
	return image.Rect(c.X, top, c.X+c.W, top+c.H)
}

// placement centres the clip on (x, y), scales it to w×h and flips y so the
// world's y-up maps onto the screen's y-down.
func placement(c boy.Clip, angle, x, y, w, h, screenHeight float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(c.W)/2, -float64(c.H)/2)
	g.Scale(w/float64(c.W), h/float64(c.H))
	if angle != 0 {
		g.Rotate(-angle)
	}
	g.Translate(x, screenHeight-y)
	return g
}
