package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the complete machine configuration.
type Config struct {
	Arm    Arm    `toml:"arm"`
	Servo1 Servo  `toml:"servo1"`
	Servo2 Servo  `toml:"servo2"`
	Motion Motion `toml:"motion"`
	Serial Serial `toml:"serial"`
}

// Arm describes the two-link geometry and the home point, in inches.
type Arm struct {
	L1    float64 `toml:"l1"`
	L2    float64 `toml:"l2"`
	HomeX float64 `toml:"home_x"`
	HomeY float64 `toml:"home_y"`
}

// Servo holds one joint's travel limits, calibration offset and home
// angle, all in degrees.
type Servo struct {
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
	Home   float64 `toml:"home"`
	Offset float64 `toml:"offset"`
}

// Motion holds feed and interpolation parameters. Feed rates are
// inches per second; resolutions are steps per inch of path.
type Motion struct {
	DefaultFeedRate  float64 `toml:"default_feed_rate"`
	MaxFeedRate      float64 `toml:"max_feed_rate"`
	ArcStepsPerInch  float64 `toml:"arc_steps_per_inch"`
	LineStepsPerInch float64 `toml:"line_steps_per_inch"`
	StepDelayMS      int     `toml:"step_delay_ms"` // per degree of servo travel
}

// Serial identifies the arm controller's serial link.
type Serial struct {
	Device string `toml:"device"`
	Baud   int    `toml:"baud"`
}

// Load parses a TOML configuration file and fills in defaults for
// anything left unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the stock configuration: 6 inch links homed at (6,6),
// 0-180 degree servos.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills missing configuration values with the stock setup.
func applyDefaults(cfg *Config) {
	if cfg.Arm.L1 == 0 {
		cfg.Arm.L1 = 6.0
	}
	if cfg.Arm.L2 == 0 {
		cfg.Arm.L2 = 6.0
	}
	if cfg.Arm.HomeX == 0 {
		cfg.Arm.HomeX = 6.0
	}
	if cfg.Arm.HomeY == 0 {
		cfg.Arm.HomeY = 6.0
	}

	if cfg.Servo1.Max == 0 {
		cfg.Servo1.Max = 180
	}
	if cfg.Servo1.Home == 0 {
		cfg.Servo1.Home = 75
	}
	if cfg.Servo2.Max == 0 {
		cfg.Servo2.Max = 180
	}
	if cfg.Servo2.Home == 0 {
		cfg.Servo2.Home = 120
	}

	if cfg.Motion.DefaultFeedRate == 0 {
		cfg.Motion.DefaultFeedRate = 2.0
	}
	if cfg.Motion.MaxFeedRate == 0 {
		cfg.Motion.MaxFeedRate = 10.0
	}
	if cfg.Motion.ArcStepsPerInch == 0 {
		cfg.Motion.ArcStepsPerInch = 10.0
	}
	if cfg.Motion.LineStepsPerInch == 0 {
		cfg.Motion.LineStepsPerInch = 5.0
	}
	if cfg.Motion.StepDelayMS == 0 {
		cfg.Motion.StepDelayMS = 15
	}

	if cfg.Serial.Device == "" {
		cfg.Serial.Device = "/dev/ttyACM0"
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = 9600
	}
}
