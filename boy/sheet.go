package boy

// Clip is a sub-rectangle of the sprite sheet. Y counts from the bottom edge
// of the sheet, so row n of the sheet is at Y = n*H.
type Clip struct {
	X, Y, W, H int
}

// Sheet draws clips of a sprite sheet. x and y are the centre of the
// destination rectangle in world units (y grows upward).
type Sheet interface {
	ClipDraw(c Clip, x, y, w, h float64)
	ClipDrawRotated(c Clip, angle, x, y, w, h float64)
	Close() error
}
