package gcode

import (
	"fmt"

	"scarab/kinematics"
)

// MissingParameterError reports a required parameter that was absent.
type MissingParameterError struct {
	What string // e.g. "X or Y"
}

func (e *MissingParameterError) Error() string {
	return "missing parameter: " + e.What
}

// InvalidValueError reports a parameter that was present but unusable.
type InvalidValueError struct {
	Letter byte
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %c value %g: %s", e.Letter, e.Value, e.Reason)
}

// UnknownCommandError reports a line that matched no supported command.
type UnknownCommandError struct {
	Line string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q", e.Line)
}

// ArcUnreachableError reports an arc with waypoints outside the workspace.
// The whole arc is rejected; position is never advanced partway.
type ArcUnreachableError struct {
	Unreachable int // waypoints outside the band
	Steps       int // total waypoints sampled
	First       *kinematics.UnreachableError
}

func (e *ArcUnreachableError) Error() string {
	return fmt.Sprintf("arc rejected: %d of %d waypoints unreachable (first: %v)",
		e.Unreachable, e.Steps, e.First)
}

func (e *ArcUnreachableError) Unwrap() error { return e.First }
