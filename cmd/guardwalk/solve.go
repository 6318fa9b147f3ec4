package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/guardwalk/internal/metrics"
	"github.com/katalvlaran/guardwalk/loopdetect"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the visited-cell count and the loop-obstruction count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args)
			if err != nil {
				return err
			}

			var extra []loopdetect.Option
			var rec *metrics.Recorder
			if a.cfg.MetricsFile != "" {
				rec = metrics.New()
				extra = append(extra, loopdetect.WithObserver(rec))
			}
			res, err := loopdetect.Detect(m, a.detectOptions(cmd, extra...)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ans1 = %d\n", res.VisitedCount())
			fmt.Fprintf(out, "ans2 = %d\n", res.LoopCount())

			if rec != nil {
				rec.ObserveResult(res)
				if err := rec.WriteTextfile(a.cfg.MetricsFile); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
				a.logger.Debug("metrics written", "path", a.cfg.MetricsFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a.flags.MetricsFile, "metrics-file", "", "write Prometheus text-format metrics to this file")

	return cmd
}
