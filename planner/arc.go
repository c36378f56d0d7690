package planner

import "math"

// minArcSteps keeps even tiny arcs mechanically smooth.
const minArcSteps = 4

// Point is a Cartesian coordinate in inches.
type Point struct {
	X float64
	Y float64
}

// Arc is a circular move resolved into a finite waypoint sequence.
// Sweep is signed radians, negative for clockwise travel.
type Arc struct {
	Center Point
	Radius float64
	Sweep  float64
	Steps  int

	start float64 // angle of the entry point, radians
}

// PlanArc resolves the arc from the current position to target around
// center. The sweep is normalized so the travel direction always matches
// the requested one: a clockwise arc never takes the counter-clockwise
// short cut and a coincident start and end requests a full circle.
// Steps is floor(arcLength * stepsPerInch) with a floor of 4.
func PlanArc(from, to, center Point, clockwise bool, stepsPerInch float64) *Arc {
	start := math.Atan2(from.Y-center.Y, from.X-center.X)
	end := math.Atan2(to.Y-center.Y, to.X-center.X)
	radius := math.Hypot(from.X-center.X, from.Y-center.Y)

	sweep := end - start
	if clockwise {
		if sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		if sweep <= 0 {
			sweep += 2 * math.Pi
		}
	}

	steps := int(math.Abs(radius*sweep) * stepsPerInch)
	if steps < minArcSteps {
		steps = minArcSteps
	}

	return &Arc{
		Center: center,
		Radius: radius,
		Sweep:  sweep,
		Steps:  steps,
		start:  start,
	}
}

// Waypoints walks the arc once at uniform angle increments, from the first
// step past the entry point through the end point inclusive. The entry
// point itself is not re-emitted. fn returning false stops the walk.
func (a *Arc) Waypoints(fn func(Point) bool) {
	for i := 1; i <= a.Steps; i++ {
		t := a.start + a.Sweep*float64(i)/float64(a.Steps)
		p := Point{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		}
		if !fn(p) {
			return
		}
	}
}

// Line interpolates a straight segment at the given resolution, at least
// two segments, emitting the points after from through to inclusive.
func Line(from, to Point, stepsPerInch float64) []Point {
	dist := math.Hypot(to.X-from.X, to.Y-from.Y)
	steps := int(dist * stepsPerInch)
	if steps < 2 {
		steps = 2
	}

	pts := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, Point{
			X: from.X + t*(to.X-from.X),
			Y: from.Y + t*(to.Y-from.Y),
		})
	}
	return pts
}
