package actuator

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"scarab/kinematics"
)

// dwellHoldsPerSecond is how many repeated setpoints one second of dwell
// expands to in the exported file.
const dwellHoldsPerSecond = 2

// Exporter accumulates servo setpoints and writes the angle file consumed
// by the SD-card firmware, one "angle1,angle2" line per setpoint. The
// firmware has no clock beyond its step delay, so dwells are expanded
// into repeated holds of the current pose.
type Exporter struct {
	cal    Calibration
	angles [][2]int
}

// NewExporter starts a new angle list, opening with the firmware's home
// pose so playback always begins from a known position.
func NewExporter(cal Calibration) *Exporter {
	e := &Exporter{cal: cal}
	s1, s2 := cal.HomePose()
	e.angles = append(e.angles, [2]int{s1, s2})
	return e
}

// MoveTo appends one calibrated setpoint.
func (e *Exporter) MoveTo(j kinematics.Joints) error {
	s1, s2 := e.cal.Apply(j)
	e.angles = append(e.angles, [2]int{s1, s2})
	return nil
}

// Dwell repeats the held pose so the firmware pauses in place.
func (e *Exporter) Dwell(d time.Duration) error {
	last := e.angles[len(e.angles)-1]
	for i := 0; i < int(d.Seconds()*dwellHoldsPerSecond); i++ {
		e.angles = append(e.angles, last)
	}
	return nil
}

// Close appends the return-to-home move that ends every program.
func (e *Exporter) Close() error {
	s1, s2 := e.cal.HomePose()
	e.angles = append(e.angles, [2]int{s1, s2})
	return nil
}

// WriteFile writes the accumulated setpoints to path.
func (e *Exporter) WriteFile(path string) error {
	var buf bytes.Buffer
	for _, a := range e.angles {
		fmt.Fprintf(&buf, "%d,%d\n", a[0], a[1])
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write angle file %s", path)
	}
	return nil
}

// Stats summarizes an exported motion.
type Stats struct {
	Points        int
	ShoulderRange [2]int
	ElbowRange    [2]int
	Duration      time.Duration // rough playback estimate
}

// Stats reports the point count, per-joint angle ranges and a playback
// estimate based on the given per-degree step delay.
func (e *Exporter) Stats(stepDelay time.Duration) Stats {
	st := Stats{Points: len(e.angles)}
	if st.Points == 0 {
		return st
	}
	st.ShoulderRange = [2]int{e.angles[0][0], e.angles[0][0]}
	st.ElbowRange = [2]int{e.angles[0][1], e.angles[0][1]}

	prev := e.angles[0]
	for _, a := range e.angles[1:] {
		st.ShoulderRange[0] = min(st.ShoulderRange[0], a[0])
		st.ShoulderRange[1] = max(st.ShoulderRange[1], a[0])
		st.ElbowRange[0] = min(st.ElbowRange[0], a[1])
		st.ElbowRange[1] = max(st.ElbowRange[1], a[1])

		steps := abs(a[0] - prev[0])
		if d := abs(a[1] - prev[1]); d > steps {
			steps = d
		}
		st.Duration += time.Duration(steps) * stepDelay
		prev = a
	}
	return st
}
