package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"scarab/actuator"
)

var runDevice string

var runCmd = &cobra.Command{
	Use:   "run [program.gcode]",
	Short: "Execute a program on the arm over serial",
	Long: `Interprets a G-code program and streams the resulting servo setpoints to
the arm controller over its serial link, paced to the firmware's step
cadence. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDevice, "device", "", "serial device (overrides config)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runDevice != "" {
		cfg.Serial.Device = runDevice
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	port, err := actuator.OpenPort(cfg.Serial)
	if err != nil {
		return err
	}
	arm := actuator.NewSerialArm(port,
		actuator.CalibrationFromConfig(cfg),
		time.Duration(cfg.Motion.StepDelayMS)*time.Millisecond)
	defer arm.Close()

	logger.Infow("connected", "device", cfg.Serial.Device, "baud", cfg.Serial.Baud)

	src, err := openProgram(args)
	if err != nil {
		return err
	}
	defer src.Close()

	return process(src, cfg, logger, arm)
}
