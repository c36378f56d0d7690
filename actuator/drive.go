package actuator

import (
	"time"

	"scarab/gcode"
	"scarab/kinematics"
	"scarab/planner"
)

// Drive forwards the motion content of one interpreter result to the
// actuator. Linear moves and homing are interpolated into intermediate
// setpoints at lineStepsPerInch so long strokes sweep through Cartesian
// space instead of jumping joint space; arcs already carry their solved
// waypoints. An interpolated chord can clip the inner reach disc even
// when both endpoints solve, so unreachable intermediates are skipped
// rather than failing a command the interpreter already committed.
func Drive(act Actuator, arm kinematics.Arm, res *gcode.Result, lineStepsPerInch float64) error {
	if res == nil {
		return nil
	}

	switch res.Kind {
	case gcode.KindRapidMove, gcode.KindFeedMove:
		return sweep(act, arm, *res.From, *res.Target, *res.Angles, lineStepsPerInch)

	case gcode.KindHome:
		if res.Intermediate != nil {
			if err := sweep(act, arm, *res.From, *res.Intermediate, *res.IntermediateAngles, lineStepsPerInch); err != nil {
				return err
			}
			return sweep(act, arm, *res.Intermediate, *res.Target, *res.Angles, lineStepsPerInch)
		}
		return sweep(act, arm, *res.From, *res.Target, *res.Angles, lineStepsPerInch)

	case gcode.KindArcCW, gcode.KindArcCCW:
		for _, j := range res.Arc.Angles {
			if err := act.MoveTo(j); err != nil {
				return err
			}
		}
		return nil

	case gcode.KindDwell:
		return act.Dwell(time.Duration(res.DwellSeconds * float64(time.Second)))
	}

	// Mode toggles, offsets and program control carry no motion.
	return nil
}

// sweep interpolates from start to target, ending on the already solved
// target angles so the final pose is exact.
func sweep(act Actuator, arm kinematics.Arm, from, to planner.Point, final kinematics.Joints, stepsPerInch float64) error {
	pts := planner.Line(from, to, stepsPerInch)
	for _, p := range pts[:len(pts)-1] {
		j, err := arm.Inverse(p.X, p.Y)
		if err != nil {
			continue
		}
		if err := act.MoveTo(j); err != nil {
			return err
		}
	}
	return act.MoveTo(final)
}
