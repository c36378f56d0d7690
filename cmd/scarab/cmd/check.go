package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [program.gcode]",
	Short: "Interpret a program without moving anything",
	Long: `Runs the full interpreter over a G-code program, solving kinematics for
every target and arc waypoint, and reports each command's outcome. No
actuator is involved. Exits nonzero if any line fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	return process(src, cfg, logger, nil)
}
