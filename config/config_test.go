package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Arm.L1 != 6.0 || cfg.Arm.L2 != 6.0 {
		t.Errorf("expected 6 inch links, got %g/%g", cfg.Arm.L1, cfg.Arm.L2)
	}
	if cfg.Arm.HomeX != 6.0 || cfg.Arm.HomeY != 6.0 {
		t.Errorf("expected home (6, 6), got (%g, %g)", cfg.Arm.HomeX, cfg.Arm.HomeY)
	}
	if cfg.Servo1.Max != 180 || cfg.Servo2.Max != 180 {
		t.Errorf("expected 180 degree travel, got %g/%g", cfg.Servo1.Max, cfg.Servo2.Max)
	}
	if cfg.Servo1.Home != 75 || cfg.Servo2.Home != 120 {
		t.Errorf("unexpected servo homes %g/%g", cfg.Servo1.Home, cfg.Servo2.Home)
	}
	if cfg.Motion.DefaultFeedRate != 2.0 || cfg.Motion.MaxFeedRate != 10.0 {
		t.Errorf("unexpected feed defaults %g/%g", cfg.Motion.DefaultFeedRate, cfg.Motion.MaxFeedRate)
	}
	if cfg.Motion.ArcStepsPerInch != 10.0 || cfg.Motion.LineStepsPerInch != 5.0 {
		t.Errorf("unexpected resolution defaults %g/%g", cfg.Motion.ArcStepsPerInch, cfg.Motion.LineStepsPerInch)
	}
	if cfg.Serial.Baud != 9600 {
		t.Errorf("expected 9600 baud, got %d", cfg.Serial.Baud)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scarab.toml")
	data := `
[arm]
l1 = 7.0
l2 = 3.0
home_x = 5.0

[motion]
max_feed_rate = 4.0

[serial]
device = "/dev/ttyUSB1"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Arm.L1 != 7.0 || cfg.Arm.L2 != 3.0 {
		t.Errorf("expected links 7/3, got %g/%g", cfg.Arm.L1, cfg.Arm.L2)
	}
	if cfg.Arm.HomeX != 5.0 {
		t.Errorf("expected home_x 5, got %g", cfg.Arm.HomeX)
	}
	// Unset values still get defaults.
	if cfg.Arm.HomeY != 6.0 {
		t.Errorf("expected default home_y 6, got %g", cfg.Arm.HomeY)
	}
	if cfg.Motion.MaxFeedRate != 4.0 {
		t.Errorf("expected max feed 4, got %g", cfg.Motion.MaxFeedRate)
	}
	if cfg.Motion.DefaultFeedRate != 2.0 {
		t.Errorf("expected default feed 2, got %g", cfg.Motion.DefaultFeedRate)
	}
	if cfg.Serial.Device != "/dev/ttyUSB1" {
		t.Errorf("expected /dev/ttyUSB1, got %s", cfg.Serial.Device)
	}
	if cfg.Serial.Baud != 9600 {
		t.Errorf("expected default baud, got %d", cfg.Serial.Baud)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/scarab.toml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
