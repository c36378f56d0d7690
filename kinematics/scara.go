package kinematics

import (
	"fmt"
	"math"
)

// Fault classifies why a target lies outside the workspace.
type Fault string

const (
	// TooFar means the target is beyond full arm extension.
	TooFar Fault = "too far"
	// TooClose means the target is inside the folded-arm radius.
	TooClose Fault = "too close"
)

// UnreachableError reports a target outside the arm's reachability band.
// Distance is the computed distance from the arm base in inches.
type UnreachableError struct {
	Fault    Fault
	Distance float64
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("target %s: distance %.2f in", e.Fault, e.Distance)
}

// Joints holds a joint-angle solution in degrees.
type Joints struct {
	Shoulder float64 // theta1, base joint
	Elbow    float64 // theta2, relative to the first link
}

// Arm is a two-link planar arm. L1 is shoulder to elbow, L2 elbow to
// wrist, both in inches. The zero value is unusable; construct from
// configured link lengths.
type Arm struct {
	L1 float64
	L2 float64
}

// MaxReach returns the fully extended radius.
func (a Arm) MaxReach() float64 { return a.L1 + a.L2 }

// MinReach returns the fully folded radius.
func (a Arm) MinReach() float64 { return math.Abs(a.L1 - a.L2) }

// Reachable reports whether (x, y) lies inside the reachability band.
func (a Arm) Reachable(x, y float64) bool {
	r := math.Hypot(x, y)
	return r >= a.MinReach() && r <= a.MaxReach()
}

// Inverse solves joint angles for the Cartesian target (x, y) in inches.
// Only the elbow-up solution branch is computed; the mirrored elbow-down
// pose (negated elbow angle) is a known limitation of this controller.
// Angles are returned unclamped; servo travel limits are applied by the
// actuation layer, not here.
func (a Arm) Inverse(x, y float64) (Joints, error) {
	r := math.Hypot(x, y)
	if r > a.MaxReach() {
		return Joints{}, &UnreachableError{Fault: TooFar, Distance: r}
	}
	if r < a.MinReach() {
		return Joints{}, &UnreachableError{Fault: TooClose, Distance: r}
	}

	// Law of cosines for the elbow. Clamp absorbs floating-point
	// overshoot exactly at the reach boundary.
	cos2 := (x*x + y*y - a.L1*a.L1 - a.L2*a.L2) / (2 * a.L1 * a.L2)
	cos2 = math.Max(-1, math.Min(1, cos2))
	t2 := math.Acos(cos2)

	k1 := a.L1 + a.L2*math.Cos(t2)
	k2 := a.L2 * math.Sin(t2)
	t1 := math.Atan2(y, x) - math.Atan2(k2, k1)

	return Joints{
		Shoulder: t1 * 180 / math.Pi,
		Elbow:    t2 * 180 / math.Pi,
	}, nil
}

// Forward computes the wrist position from joint angles in degrees.
// Used to verify inverse solutions.
func (a Arm) Forward(j Joints) (x, y float64) {
	t1 := j.Shoulder * math.Pi / 180
	t2 := j.Elbow * math.Pi / 180

	x = a.L1*math.Cos(t1) + a.L2*math.Cos(t1+t2)
	y = a.L1*math.Sin(t1) + a.L2*math.Sin(t1+t2)
	return x, y
}
