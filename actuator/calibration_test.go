package actuator

import (
	"testing"

	"scarab/config"
	"scarab/kinematics"
)

func TestCalibrationApply(t *testing.T) {
	cal := CalibrationFromConfig(config.Default()) // 0-180, no trim

	tests := []struct {
		joints kinematics.Joints
		s1, s2 int
	}{
		{kinematics.Joints{Shoulder: 45, Elbow: 90}, 45, 90},
		{kinematics.Joints{Shoulder: 45.4, Elbow: 89.6}, 45, 90},
		// Out-of-travel solutions clamp to the servo range.
		{kinematics.Joints{Shoulder: -16.9, Elbow: 123.7}, 0, 124},
		{kinematics.Joints{Shoulder: 200, Elbow: 181}, 180, 180},
	}
	for _, test := range tests {
		s1, s2 := cal.Apply(test.joints)
		if s1 != test.s1 || s2 != test.s2 {
			t.Errorf("Apply(%+v) = (%d, %d), want (%d, %d)", test.joints, s1, s2, test.s1, test.s2)
		}
	}
}

func TestCalibrationOffset(t *testing.T) {
	cfg := config.Default()
	cfg.Servo1.Offset = 5
	cfg.Servo2.Offset = -10
	cal := CalibrationFromConfig(cfg)

	s1, s2 := cal.Apply(kinematics.Joints{Shoulder: 90, Elbow: 90})
	if s1 != 95 || s2 != 80 {
		t.Errorf("expected (95, 80), got (%d, %d)", s1, s2)
	}

	// Trim never pushes past the travel limits.
	s1, _ = cal.Apply(kinematics.Joints{Shoulder: 178, Elbow: 90})
	if s1 != 180 {
		t.Errorf("expected clamp at 180, got %d", s1)
	}
}

func TestHomePose(t *testing.T) {
	cal := CalibrationFromConfig(config.Default())
	s1, s2 := cal.HomePose()
	if s1 != 75 || s2 != 120 {
		t.Errorf("expected home pose (75, 120), got (%d, %d)", s1, s2)
	}
}
