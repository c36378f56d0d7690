package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"scarab/actuator"
	"scarab/config"
	"scarab/gcode"
)

// openProgram returns the program line source: the named file, or stdin
// when no argument was given.
func openProgram(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "open program %s", args[0])
	}
	return f, nil
}

// process feeds the program line by line through the interpreter and, when
// an actuator is given, drives it with each result. Per-line failures are
// logged and execution continues with the next line; only an unreadable
// source or a failing actuator aborts the run. M2 or end of input stops it.
func process(r io.Reader, cfg *config.Config, logger *zap.SugaredLogger, act actuator.Actuator) error {
	interp := gcode.New(cfg, logger)
	sc := bufio.NewScanner(r)

	lineNo := 0
	failed := 0
	for sc.Scan() {
		lineNo++
		res, err := interp.Execute(sc.Text())
		if err != nil {
			failed++
			logger.Errorw("command failed", "line", lineNo, "error", err)
			continue
		}
		if res == nil {
			continue
		}

		logResult(logger, lineNo, res)

		if act != nil {
			if err := actuator.Drive(act, interp.Arm(), res, cfg.Motion.LineStepsPerInch); err != nil {
				return errors.Wrapf(err, "actuate line %d", lineNo)
			}
		}
		if res.Kind == gcode.KindProgramEnd {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read program")
	}
	if failed > 0 {
		return errors.Errorf("%d command(s) failed", failed)
	}
	return nil
}

// logResult emits the per-command information content: targets and angles
// for moves, arc geometry and waypoint tally for arcs, durations, offsets
// and mode echoes.
func logResult(logger *zap.SugaredLogger, lineNo int, res *gcode.Result) {
	switch res.Kind {
	case gcode.KindRapidMove, gcode.KindFeedMove:
		logger.Infow(res.Kind.String(),
			"line", lineNo,
			"x", res.Target.X, "y", res.Target.Y,
			"shoulder", res.Angles.Shoulder, "elbow", res.Angles.Elbow,
			"feed", res.Feed,
		)
	case gcode.KindArcCW, gcode.KindArcCCW:
		logger.Infow(res.Kind.String(),
			"line", lineNo,
			"x", res.Target.X, "y", res.Target.Y,
			"centerX", res.Arc.Center.X, "centerY", res.Arc.Center.Y,
			"radius", res.Arc.Radius,
			"steps", res.Arc.Steps,
			"reachable", len(res.Arc.Waypoints),
		)
	case gcode.KindDwell:
		logger.Infow("dwell", "line", lineNo, "seconds", res.DwellSeconds)
	case gcode.KindHome:
		logger.Infow("home",
			"line", lineNo,
			"x", res.Target.X, "y", res.Target.Y,
			"shoulder", res.Angles.Shoulder, "elbow", res.Angles.Elbow,
		)
	case gcode.KindSetOffset:
		logger.Infow("set offset", "line", lineNo, "offsetX", res.Offset.X, "offsetY", res.Offset.Y)
	case gcode.KindUnitsInch, gcode.KindUnitsMM:
		logger.Infow("units", "line", lineNo, "units", res.Units.String())
	case gcode.KindAbsoluteMode, gcode.KindIncrementalMode:
		logger.Infow("positioning", "line", lineNo, "absolute", *res.Absolute)
	case gcode.KindToolChange:
		logger.Infow("tool change acknowledged", "line", lineNo)
	case gcode.KindProgramEnd:
		logger.Infow("program end", "line", lineNo)
	}
}
