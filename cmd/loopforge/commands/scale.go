package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gophloop/loopforge/bench"
	"github.com/gophloop/loopforge/fwbw"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "run the configured scaling sweep and print a size-vs-duration table",
	RunE:  runScale,
}

func runScale(cmd *cobra.Command, args []string) error {
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
	results, err := h.RunScalingSweep(cmd.Context(), cfg.ScalingCounts)
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tLOOPS\tTARJAN\tFWBW\tAGREE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%t\n", r.Scenario, r.Tarjan.Loops, r.Tarjan.Duration, r.FWBW.Duration, r.Agree)
	}
	return tw.Flush()
}
