package actuator

import (
	"math"

	"scarab/config"
	"scarab/kinematics"
)

// JointCal is one servo's calibration: travel limits, trim offset and the
// pose the firmware assumes at power-on, all in degrees.
type JointCal struct {
	Min    float64
	Max    float64
	Offset float64
	Home   float64
}

// Calibration maps solver angles onto bounded servo travel. The solver
// itself reports raw angles; clamping happens here, at the boundary.
type Calibration struct {
	Shoulder JointCal
	Elbow    JointCal
}

// CalibrationFromConfig builds the calibration from the servo sections.
func CalibrationFromConfig(cfg *config.Config) Calibration {
	return Calibration{
		Shoulder: JointCal{
			Min:    cfg.Servo1.Min,
			Max:    cfg.Servo1.Max,
			Offset: cfg.Servo1.Offset,
			Home:   cfg.Servo1.Home,
		},
		Elbow: JointCal{
			Min:    cfg.Servo2.Min,
			Max:    cfg.Servo2.Max,
			Offset: cfg.Servo2.Offset,
			Home:   cfg.Servo2.Home,
		},
	}
}

// Apply adds the trim offsets, clamps both joints to servo travel and
// rounds to the integer setpoints the firmware consumes.
func (c Calibration) Apply(j kinematics.Joints) (s1, s2 int) {
	s1 = int(math.Round(clamp(j.Shoulder+c.Shoulder.Offset, c.Shoulder.Min, c.Shoulder.Max)))
	s2 = int(math.Round(clamp(j.Elbow+c.Elbow.Offset, c.Elbow.Min, c.Elbow.Max)))
	return s1, s2
}

// HomePose returns the firmware's power-on setpoints.
func (c Calibration) HomePose() (s1, s2 int) {
	return int(math.Round(c.Shoulder.Home)), int(math.Round(c.Elbow.Home))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
