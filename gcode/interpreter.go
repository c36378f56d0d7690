package gcode

import (
	"errors"

	"go.uber.org/zap"

	"scarab/config"
	"scarab/kinematics"
	"scarab/planner"
)

// Result is the structured outcome of one executed line. Which fields are
// set depends on Kind: moves and home carry From/Target/Angles, arcs add
// Arc, dwell carries DwellSeconds, G92 echoes Offset, mode toggles echo
// Units or Absolute.
type Result struct {
	Kind Kind
	Raw  string // normalized line

	From   *planner.Point // position before a move committed
	Target *planner.Point // resolved physical target, inches
	Angles *kinematics.Joints
	Feed   float64 // effective speed for moves, inches/sec

	Arc *ArcResult

	// Home via-point, when G28 was given X/Y.
	Intermediate       *planner.Point
	IntermediateAngles *kinematics.Joints

	DwellSeconds float64
	Offset       *planner.Point
	Units        *Units
	Absolute     *bool
}

// ArcResult carries the resolved arc geometry and the solved joint angles
// for every sampled waypoint, in travel order.
type ArcResult struct {
	Center    planner.Point
	Radius    float64
	Sweep     float64 // signed radians, negative clockwise
	Steps     int
	Waypoints []planner.Point
	Angles    []kinematics.Joints
}

// Interpreter executes G-code lines against a two-link arm model. It owns
// the modal state; commands that fail leave the state untouched and the
// next line proceeds normally.
type Interpreter struct {
	cfg   *config.Config
	arm   kinematics.Arm
	state State
	log   *zap.SugaredLogger
}

// New creates an interpreter positioned at the configured home point, in
// absolute inch mode at the default feed rate. logger may be nil.
func New(cfg *config.Config, logger *zap.SugaredLogger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Interpreter{
		cfg: cfg,
		arm: kinematics.Arm{L1: cfg.Arm.L1, L2: cfg.Arm.L2},
		state: State{
			Pos:      planner.Point{X: cfg.Arm.HomeX, Y: cfg.Arm.HomeY},
			Absolute: true,
			Units:    UnitInch,
			FeedRate: cfg.Motion.DefaultFeedRate,
		},
		log: logger,
	}
}

// State returns a copy of the current modal state.
func (in *Interpreter) State() State { return in.state }

// Arm returns the arm geometry the interpreter solves against.
func (in *Interpreter) Arm() kinematics.Arm { return in.arm }

// Execute interprets one raw line. A nil result with nil error means the
// line was empty or comment-only. On error the modal state is unchanged.
func (in *Interpreter) Execute(line string) (*Result, error) {
	norm := normalize(line)
	if norm == "" {
		return nil, nil
	}

	var (
		res *Result
		err error
	)
	switch kind := classify(norm); kind {
	case KindRapidMove, KindFeedMove:
		res, err = in.doMove(norm, kind)
	case KindArcCW, KindArcCCW:
		res, err = in.doArc(norm, kind)
	case KindDwell:
		res, err = in.doDwell(norm)
	case KindUnitsInch, KindUnitsMM:
		res = in.doUnits(kind)
	case KindHome:
		res, err = in.doHome(norm)
	case KindAbsoluteMode, KindIncrementalMode:
		res = in.doPositioningMode(kind)
	case KindSetOffset:
		res = in.doSetOffset(norm)
	case KindProgramEnd:
		res = &Result{Kind: KindProgramEnd}
	case KindToolChange:
		res = &Result{Kind: KindToolChange}
	default:
		err = &UnknownCommandError{Line: norm}
	}
	if err != nil {
		return nil, err
	}

	res.Raw = norm
	in.log.Debugw("state",
		"absolute", in.state.Absolute,
		"units", in.state.Units.String(),
		"x", in.state.Pos.X,
		"y", in.state.Pos.Y,
		"feed", in.state.FeedRate,
	)
	return res, nil
}

// doMove handles G0 (rapid) and G1 (feed) linear moves.
func (in *Interpreter) doMove(line string, kind Kind) (*Result, error) {
	x := ParseParam(line, 'X')
	y := ParseParam(line, 'Y')
	if !x.Present && !y.Present {
		return nil, &MissingParameterError{What: "X or Y"}
	}

	feed := in.state.FeedRate
	if f := ParseParam(line, 'F'); f.Present {
		if f.Value <= 0 {
			return nil, &InvalidValueError{Letter: 'F', Value: f.Value, Reason: "feed rate must be positive"}
		}
		feed = in.state.toInches(f.Value)
		if feed > in.cfg.Motion.MaxFeedRate {
			feed = in.cfg.Motion.MaxFeedRate
		}
	}

	target := in.state.resolveTarget(x, y)
	joints, err := in.arm.Inverse(target.X, target.Y)
	if err != nil {
		return nil, err
	}

	from := in.state.Pos
	in.state.Pos = target
	in.state.FeedRate = feed

	speed := feed
	if kind == KindRapidMove {
		speed = in.cfg.Motion.MaxFeedRate
	}
	return &Result{
		Kind:   kind,
		From:   &from,
		Target: &target,
		Angles: &joints,
		Feed:   speed,
	}, nil
}

// doArc handles G2 (clockwise) and G3 (counter-clockwise) arc moves.
// Every sampled waypoint must solve; one unreachable waypoint rejects the
// whole arc and position is not advanced.
func (in *Interpreter) doArc(line string, kind Kind) (*Result, error) {
	x := ParseParam(line, 'X')
	y := ParseParam(line, 'Y')
	iOff := ParseParam(line, 'I')
	jOff := ParseParam(line, 'J')
	if !iOff.Present && !jOff.Present {
		return nil, &MissingParameterError{What: "I or J"}
	}

	target := in.state.resolveTarget(x, y)
	center := planner.Point{
		X: in.state.Pos.X + in.state.toInches(iOff.Value),
		Y: in.state.Pos.Y + in.state.toInches(jOff.Value),
	}

	arc := planner.PlanArc(in.state.Pos, target, center, kind == KindArcCW,
		in.cfg.Motion.ArcStepsPerInch)

	waypoints := make([]planner.Point, 0, arc.Steps)
	angles := make([]kinematics.Joints, 0, arc.Steps)
	unreachable := 0
	var first *kinematics.UnreachableError
	arc.Waypoints(func(p planner.Point) bool {
		joints, err := in.arm.Inverse(p.X, p.Y)
		if err != nil {
			unreachable++
			var ue *kinematics.UnreachableError
			if first == nil && errors.As(err, &ue) {
				first = ue
			}
			return true // keep walking to tally the rest
		}
		waypoints = append(waypoints, p)
		angles = append(angles, joints)
		return true
	})
	if unreachable > 0 {
		return nil, &ArcUnreachableError{Unreachable: unreachable, Steps: arc.Steps, First: first}
	}

	from := in.state.Pos
	in.state.Pos = target

	return &Result{
		Kind:   kind,
		From:   &from,
		Target: &target,
		Feed:   in.state.FeedRate,
		Arc: &ArcResult{
			Center:    center,
			Radius:    arc.Radius,
			Sweep:     arc.Sweep,
			Steps:     arc.Steps,
			Waypoints: waypoints,
			Angles:    angles,
		},
	}, nil
}

// doDwell handles G4. Only the duration is computed here; any actual
// pause belongs to the actuation layer.
func (in *Interpreter) doDwell(line string) (*Result, error) {
	p := ParseParam(line, 'P')
	if !p.Present {
		return nil, &MissingParameterError{What: "P"}
	}
	if p.Value <= 0 {
		return nil, &InvalidValueError{Letter: 'P', Value: p.Value, Reason: "dwell must be positive"}
	}
	return &Result{Kind: KindDwell, DwellSeconds: p.Value}, nil
}

// doHome handles G28. The home point still goes through the solver; with
// X and/or Y present the arm passes through that point first.
func (in *Interpreter) doHome(line string) (*Result, error) {
	res := &Result{Kind: KindHome}

	x := ParseParam(line, 'X')
	y := ParseParam(line, 'Y')
	if x.Present || y.Present {
		via := in.state.resolveTarget(x, y)
		joints, err := in.arm.Inverse(via.X, via.Y)
		if err != nil {
			return nil, err
		}
		res.Intermediate = &via
		res.IntermediateAngles = &joints
	}

	home := planner.Point{X: in.cfg.Arm.HomeX, Y: in.cfg.Arm.HomeY}
	joints, err := in.arm.Inverse(home.X, home.Y)
	if err != nil {
		return nil, err
	}

	from := in.state.Pos
	in.state.Pos = home
	res.From = &from
	res.Target = &home
	res.Angles = &joints
	res.Feed = in.state.FeedRate
	return res, nil
}

// doSetOffset handles G92. Bare G92 clears the offset. With parameters,
// the given coordinate becomes the new label for the current physical
// position on that axis; an omitted axis has its offset cleared. The arm
// does not move.
func (in *Interpreter) doSetOffset(line string) *Result {
	x := ParseParam(line, 'X')
	y := ParseParam(line, 'Y')

	offset := planner.Point{}
	if x.Present {
		offset.X = in.state.Pos.X - in.state.toInches(x.Value)
	}
	if y.Present {
		offset.Y = in.state.Pos.Y - in.state.toInches(y.Value)
	}
	in.state.Offset = offset

	echo := offset
	return &Result{Kind: KindSetOffset, Offset: &echo}
}

func (in *Interpreter) doUnits(kind Kind) *Result {
	if kind == KindUnitsInch {
		in.state.Units = UnitInch
	} else {
		in.state.Units = UnitMillimeter
	}
	u := in.state.Units
	return &Result{Kind: kind, Units: &u}
}

func (in *Interpreter) doPositioningMode(kind Kind) *Result {
	in.state.Absolute = kind == KindAbsoluteMode
	abs := in.state.Absolute
	return &Result{Kind: kind, Absolute: &abs}
}
