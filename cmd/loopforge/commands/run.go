package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gophloop/loopforge/bench"
	"github.com/gophloop/loopforge/fwbw"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run every configured scenario through every configured engine",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.ParallelThreshold > 0 {
		fwbw.ParallelThreshold = cfg.ParallelThreshold
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	h := bench.New(logger)
	engines := engineKinds(cfg.Engines)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tENGINE\tLOOPS\tDURATION")

	for _, sc := range scenarios(cfg) {
		for _, engine := range engines {
			result, err := h.Run(cmd.Context(), sc, engine)
			if err != nil {
				return fmt.Errorf("run %s/%s: %w", sc.Name, engine, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", result.Scenario, result.Engine, result.Loops, result.Duration)

			if verbose || cfg.Verbose {
				result.LSG.DumpStderr()
			}
			if debug {
				spew.Fdump(os.Stderr, result.LSG)
			}
		}
	}

	return tw.Flush()
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
