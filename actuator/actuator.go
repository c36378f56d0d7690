// Package actuator contains the joint-angle sinks that consume interpreter
// output: a live serial link to the arm controller, an angle-file exporter
// for the SD-card firmware, and the servo calibration shared by both.
package actuator

import (
	"time"

	"scarab/kinematics"
)

// Actuator accepts joint-angle setpoints produced by the interpreter.
type Actuator interface {
	// MoveTo drives both joints toward the given solution.
	MoveTo(j kinematics.Joints) error
	// Dwell holds the current pose for the given duration.
	Dwell(d time.Duration) error
	Close() error
}

// Nop discards all setpoints. Used by verification-only runs and tests.
type Nop struct{}

func (Nop) MoveTo(kinematics.Joints) error { return nil }
func (Nop) Dwell(time.Duration) error      { return nil }
func (Nop) Close() error                   { return nil }
