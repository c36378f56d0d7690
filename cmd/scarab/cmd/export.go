package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"scarab/actuator"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [program.gcode]",
	Short: "Export a program as an SD-card angle file",
	Long: `Interprets a G-code program and writes the servo setpoint file the
SD-card firmware plays back, one "angle1,angle2" line per step. The file
opens and closes at the home pose; dwells become repeated holds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "moves.txt", "output angle file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	src, err := openProgram(args)
	if err != nil {
		return err
	}
	defer src.Close()

	exp := actuator.NewExporter(actuator.CalibrationFromConfig(cfg))
	if err := process(src, cfg, logger, exp); err != nil {
		return err
	}
	exp.Close() //nolint:errcheck // appends the return-home move, cannot fail

	if err := exp.WriteFile(exportOut); err != nil {
		return err
	}

	stats := exp.Stats(time.Duration(cfg.Motion.StepDelayMS) * time.Millisecond)
	logger.Infow("exported",
		"file", exportOut,
		"points", stats.Points,
		"shoulderRange", stats.ShoulderRange,
		"elbowRange", stats.ElbowRange,
		"estimatedDuration", stats.Duration,
	)
	return nil
}
