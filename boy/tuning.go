package boy

import "github.com/pkg/errors"

// Tuning holds the per-state constants. The zero value is not usable; start
// from DefaultTuning.
type Tuning struct {
	FrameSize      int
	FrameCount     int
	RunSpeed       float64
	AutoRunSpeed   float64
	IdleTimeout    float64
	AutoRunTimeout float64
	LeftBound      float64
	RightBound     float64
}

func DefaultTuning() Tuning {
	return Tuning{
		FrameSize:      100,
		FrameCount:     8,
		RunSpeed:       5,
		AutoRunSpeed:   20,
		IdleTimeout:    3.0,
		AutoRunTimeout: 5.0,
		LeftBound:      0,
		RightBound:     800,
	}
}

// Validate rejects tunings the states cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.FrameSize <= 0:
		return errors.Errorf("tuning: frame size must be positive, got %d", t.FrameSize)
	case t.FrameCount <= 0:
		return errors.Errorf("tuning: frame count must be positive, got %d", t.FrameCount)
	case t.IdleTimeout < 0 || t.AutoRunTimeout < 0:
		return errors.New("tuning: timeouts must not be negative")
	case t.LeftBound >= t.RightBound:
		return errors.Errorf("tuning: left bound %g must be below right bound %g", t.LeftBound, t.RightBound)
	}
	return nil
}
