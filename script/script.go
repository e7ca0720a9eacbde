// Package script runs tengo autopilot scripts that press and release keys on
// the character's behalf. A script defines a step function that is called once
// per tick:
//
//	step := func(boy) {
//		if boy.tick == 20 { boy.press("right") }
//		if boy.tick == 60 { boy.release("right") }
//	}
//
// boy carries tick, state, x, y, dir, frame, a memo map that survives between
// ticks, and the press and release functions.
package script

import (
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/boy/boy"
	"github.com/pkg/errors"
)

const dispatch = `
step(__boy)
`

// Frame is the view of the character a script sees.
type Frame struct {
	Tick  int
	State boy.StateID
	X, Y  float64
	Dir   int
	Frame int
}

// Driver is a compiled autopilot script.
type Driver struct {
	name     string
	compiled *tengo.Compiled
	memo     *tengo.Map
	pending  []boy.KeyEvent
}

// Load compiles the script at path.
func Load(path string) (*Driver, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "script: read %s", path)
	}
	return Compile(path, src)
}

// Compile compiles src. name is used in error messages.
func Compile(name string, src []byte) (*Driver, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), dispatch...))
	if err := s.Add("__boy", map[string]any{}); err != nil {
		return nil, errors.Wrapf(err, "script: %s", name)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, errors.Wrapf(err, "script: compile %s", name)
	}
	return &Driver{
		name:     name,
		compiled: compiled,
		memo:     &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Step runs the script for one tick and returns the key events it produced.
// The returned slice is reused by the next call.
func (d *Driver) Step(f Frame) ([]boy.KeyEvent, error) {
	d.pending = d.pending[:0]
	if err := d.compiled.Set("__boy", d.view(f)); err != nil {
		return nil, errors.Wrapf(err, "script: %s", d.name)
	}
	if err := d.compiled.Run(); err != nil {
		return nil, errors.Wrapf(err, "script: %s tick %d", d.name, f.Tick)
	}
	return d.pending, nil
}

func (d *Driver) view(f Frame) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"tick":    &tengo.Int{Value: int64(f.Tick)},
		"state":   &tengo.String{Value: f.State.String()},
		"x":       &tengo.Float{Value: f.X},
		"y":       &tengo.Float{Value: f.Y},
		"dir":     &tengo.Int{Value: int64(f.Dir)},
		"frame":   &tengo.Int{Value: int64(f.Frame)},
		"memo":    d.memo,
		"press":   d.keyFunc("press", boy.KeyDown),
		"release": d.keyFunc("release", boy.KeyUp),
	}}
}

func (d *Driver) keyFunc(name string, action boy.KeyAction) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		s, _ := tengo.ToString(args[0])
		key, ok := ParseKey(s)
		if !ok {
			return tengo.FalseValue, nil
		}
		d.pending = append(d.pending, boy.KeyEvent{Action: action, Key: key})
		return tengo.TrueValue, nil
	}}
}

// ParseKey maps a key name as written in scripts onto a boy.Key.
func ParseKey(name string) (boy.Key, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "space":
		return boy.KeySpace, true
	case "left":
		return boy.KeyLeft, true
	case "right":
		return boy.KeyRight, true
	case "a":
		return boy.KeyA, true
	}
	return boy.KeyUnknown, false
}
