package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boy/boy"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []boy.KeyEvent
	}{
		{
			name: "nothing",
		},
		{
			name:    "arrows",
			pressed: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowLeft},
			want:    []boy.KeyEvent{boy.Press(boy.KeyRight), boy.Press(boy.KeyLeft)},
		},
		{
			name:     "release_before_press",
			pressed:  []ebiten.Key{ebiten.KeySpace},
			released: []ebiten.Key{ebiten.KeyA},
			want:     []boy.KeyEvent{boy.Release(boy.KeyA), boy.Press(boy.KeySpace)},
		},
		{
			name:     "unbound_keys_dropped",
			pressed:  []ebiten.Key{ebiten.KeyQ, ebiten.KeyA},
			released: []ebiten.Key{ebiten.KeyEnter},
			want:     []boy.KeyEvent{boy.Press(boy.KeyA)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Translate(nil, c.pressed, c.released)
			assert.Equal(t, c.want, got)
		})
	}
}
