package actuator

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"

	"scarab/config"
	"scarab/kinematics"
)

// Port is the byte transport to the arm controller. The indirection keeps
// the real serial device out of tests; any WriteCloser stands in.
type Port interface {
	io.WriteCloser
}

// OpenPort opens the native serial device described by the config.
func OpenPort(cfg config.Serial) (Port, error) {
	p, err := serial.OpenPort(&serial.Config{Name: cfg.Device, Baud: cfg.Baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", cfg.Device)
	}
	return p, nil
}

// SerialArm drives the arm firmware live over a serial link, one
// "angle1,angle2" line per setpoint. The firmware steps each servo one
// degree per step delay, so writes are paced by the largest joint delta
// to avoid outrunning it.
type SerialArm struct {
	port      Port
	cal       Calibration
	stepDelay time.Duration // per degree of travel

	pos1, pos2 int // last commanded setpoints
}

// NewSerialArm wraps an open port. The firmware is assumed to start at
// its home pose.
func NewSerialArm(port Port, cal Calibration, stepDelay time.Duration) *SerialArm {
	s1, s2 := cal.HomePose()
	return &SerialArm{port: port, cal: cal, stepDelay: stepDelay, pos1: s1, pos2: s2}
}

// MoveTo sends one setpoint line and waits for the servos to sweep there.
func (a *SerialArm) MoveTo(j kinematics.Joints) error {
	s1, s2 := a.cal.Apply(j)
	if _, err := fmt.Fprintf(a.port, "%d,%d\n", s1, s2); err != nil {
		return errors.Wrap(err, "write setpoint")
	}

	steps := abs(s1 - a.pos1)
	if d := abs(s2 - a.pos2); d > steps {
		steps = d
	}
	a.pos1, a.pos2 = s1, s2

	if a.stepDelay > 0 {
		time.Sleep(time.Duration(steps) * a.stepDelay)
	}
	return nil
}

// Dwell holds the pose by simply waiting.
func (a *SerialArm) Dwell(d time.Duration) error {
	time.Sleep(d)
	return nil
}

func (a *SerialArm) Close() error { return a.port.Close() }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
