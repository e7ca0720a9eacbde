// Package boy implements a keyboard-driven animated character whose behaviour
// is an event-driven state machine. Rendering, input polling and the frame
// loop live outside the package; the character only needs a Sheet to draw
// with and a Clock to time its states.
package boy

import (
	"log/slog"

	"github.com/pkg/errors"
)

const (
	startX = 400
	startY = 90
)

// Boy is the actor. Its fields are written only by the hooks of the active
// state.
type Boy struct {
	X, Y      float64
	Dir       int
	Frame     int
	Action    Action
	StartTime float64

	machine *Machine
	sheet   Sheet
	clock   Clock
	tuning  Tuning
	logger  *slog.Logger
}

type options struct {
	clock  Clock
	tuning Tuning
	table  Table
	logger *slog.Logger
	x, y   float64
}

type Option func(*options)

func WithClock(c Clock) Option { return func(o *options) { o.clock = c } }

func WithTuning(t Tuning) Option { return func(o *options) { o.tuning = t } }

func WithTable(t Table) Option { return func(o *options) { o.table = t } }

func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithPosition overrides the spawn position.
func WithPosition(x, y float64) Option {
	return func(o *options) { o.x, o.y = x, y }
}

// New builds the character around sheet and starts its machine in Idle. The
// Boy owns sheet from here on and releases it in Close.
func New(sheet Sheet, opts ...Option) (*Boy, error) {
	if sheet == nil {
		return nil, errors.New("boy: nil sprite sheet")
	}
	o := options{
		tuning: DefaultTuning(),
		x:      startX,
		y:      startY,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = NewSystemClock()
	}
	if o.table == nil {
		o.table = DefaultTable()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if err := o.tuning.Validate(); err != nil {
		return nil, err
	}
	if err := o.table.Validate(); err != nil {
		return nil, err
	}

	b := &Boy{
		X:      o.x,
		Y:      o.y,
		Action: ActionIdleRight,
		sheet:  sheet,
		clock:  o.clock,
		tuning: o.tuning,
		logger: o.logger,
	}
	b.machine = newMachine(b, o.table, o.logger.With("component", "boy"))
	b.machine.Start()
	return b, nil
}

func (b *Boy) Update() { b.machine.Update() }

// Draw renders the active state. It does nothing once the Boy is closed.
func (b *Boy) Draw() {
	if b.sheet == nil {
		return
	}
	b.machine.Draw()
}

// HandleEvent forwards a key edge to the machine.
func (b *Boy) HandleEvent(k KeyEvent) bool {
	return b.machine.HandleEvent(Input(k))
}

func (b *Boy) State() StateID { return b.machine.Current() }

func (b *Boy) Machine() *Machine { return b.machine }

func (b *Boy) Tuning() Tuning { return b.tuning }

// SetTuning swaps the constants between ticks. The frame index is folded into
// the new frame count.
func (b *Boy) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	b.tuning = t
	b.Frame %= t.FrameCount
	return nil
}

// Close releases the sprite sheet.
func (b *Boy) Close() error {
	if b.sheet == nil {
		return nil
	}
	err := b.sheet.Close()
	b.sheet = nil
	return errors.Wrap(err, "boy: close sheet")
}
