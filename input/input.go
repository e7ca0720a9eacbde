// Package input turns ebiten keyboard edges into boy key events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boy/boy"
)

var bindings = map[ebiten.Key]boy.Key{
	ebiten.KeySpace:      boy.KeySpace,
	ebiten.KeyArrowLeft:  boy.KeyLeft,
	ebiten.KeyArrowRight: boy.KeyRight,
	ebiten.KeyA:          boy.KeyA,
}

// Input collects the key edges of the current tick.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []boy.KeyEvent

	// Pause and Quit are true on the tick Escape or F12 went down.
	Pause bool
	Quit  bool
}

func New() *Input {
	return &Input{}
}

// Update polls ebiten. Call once per tick before reading Events.
func (i *Input) Update() {
	i.pressed = inpututil.AppendJustPressedKeys(i.pressed[:0])
	i.released = inpututil.AppendJustReleasedKeys(i.released[:0])
	i.events = Translate(i.events[:0], i.pressed, i.released)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}

// Events returns this tick's key events. The slice is reused by Update.
func (i *Input) Events() []boy.KeyEvent {
	return i.events
}

// Translate appends the bound keys of pressed and released to dst, releases
// first so that a key released and pressed in one tick ends pressed.
func Translate(dst []boy.KeyEvent, pressed, released []ebiten.Key) []boy.KeyEvent {
	for _, k := range released {
		if key, ok := bindings[k]; ok {
			dst = append(dst, boy.Release(key))
		}
	}
	for _, k := range pressed {
		if key, ok := bindings[k]; ok {
			dst = append(dst, boy.Press(key))
		}
	}
	return dst
}
