// Package cli provides the command-line interface for the cooling estimator.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"newton_cooling/internal/config"
	"newton_cooling/internal/logger"
	"newton_cooling/internal/service"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configDir string
	verbose   bool

	cfg    config.Config
	log    *logger.Logger
	curves *service.CurveService
	est    *service.EstimatorService
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cooling",
		Short: "Estimate time of death with Newton's law of cooling",
		Long: `cooling fits Newton's law of cooling to two body-temperature
measurements and works back to the moment the body was at T0.

Examples:
  cooling estimate --ta 20 --t1 0 --T1 30 --t2 60 --T2 25
  cooling estimate --ta 20 --t1 0 --T1 30 --t2 60 --T2 25 --at 14:00 --steps
  cooling curve --ta 20 --t1 0 --T1 30 --t2 60 --T2 25 --step 15`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configDir, "config", os.Getenv("COOLING_CONFIG_DIR"), "directory holding config.yml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log calculation events to stderr")

	root.AddCommand(newEstimateCmd(a))
	root.AddCommand(newCurveCmd(a))
	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	a.log = logger.Nop()
	if a.verbose {
		a.log = logger.New(logger.DebugLevel, stderr)
	}
	a.est = service.NewEstimatorService(cfg.Model.DefaultBodyTempC, a.log)
	a.curves = service.NewCurveService(a.est, a.log)
	return nil
}

// Execute runs the CLI against os.Args. Errors are printed verbatim on
// stderr and reported through the exit code by the caller.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
