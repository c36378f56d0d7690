package gcode

import "scarab/planner"

// MMPerInch converts millimeter input to the internal inch frame.
const MMPerInch = 25.4

// Units is the active unit mode for incoming numbers.
type Units int

const (
	UnitInch Units = iota
	UnitMillimeter
)

func (u Units) String() string {
	if u == UnitMillimeter {
		return "mm"
	}
	return "inches"
}

// State is the modal context carried across commands. Pos and Offset are
// always inches regardless of Units, which affects only how incoming
// numbers are read. Only the interpreter mutates State, and only after a
// command fully succeeds.
type State struct {
	Pos      planner.Point // physical position
	Offset   planner.Point // G92 frame offset
	Absolute bool
	Units    Units
	FeedRate float64 // inches per second
}

// toInches converts a value from the working unit.
func (s State) toInches(v float64) float64 {
	if s.Units == UnitMillimeter {
		return v / MMPerInch
	}
	return v
}

// UserPosition returns the position as labelled by the G92 offset frame.
func (s State) UserPosition() planner.Point {
	return planner.Point{X: s.Pos.X - s.Offset.X, Y: s.Pos.Y - s.Offset.Y}
}

// resolveTarget turns optional X/Y parameters into a physical-frame target.
// Absolute mode: a given value is unit-converted and then has the offset
// subtracted; an omitted axis stays at the current physical coordinate.
// Incremental mode: given values are deltas from the current position and
// the offset, being a pure translation, does not apply.
func (s State) resolveTarget(x, y Param) planner.Point {
	target := s.Pos
	if s.Absolute {
		if x.Present {
			target.X = s.toInches(x.Value) - s.Offset.X
		}
		if y.Present {
			target.Y = s.toInches(y.Value) - s.Offset.Y
		}
		return target
	}
	if x.Present {
		target.X += s.toInches(x.Value)
	}
	if y.Present {
		target.Y += s.toInches(y.Value)
	}
	return target
}
