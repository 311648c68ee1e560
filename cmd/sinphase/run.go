package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/sinphase/pkg/batch"
	"github.com/ib-77/sinphase/pkg/sinphase"
)

var (
	workers   int
	showAudit bool
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run source files through every stage and certify the chain",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		units := make([]batch.Unit, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			units = append(units, batch.Unit{Name: path, Input: data})
		}

		if workers <= 0 {
			workers = cfg.Batch.Workers
		}
		ctx = batch.WithWorkerOptions(ctx, workers)
		ctx = batch.WithCertifyOptions(ctx, cfg.Batch.Certify)

		reports := batch.NewRunner(newFactory(), logger).Run(ctx, units...)
		printReports(cmd.OutOrStdout(), reports, showAudit)

		return batch.Err(reports)
	},
}

func init() {
	runCmd.Flags().IntVarP(&workers, "workers", "w", 0, "units processed in parallel (default from config)")
	runCmd.Flags().BoolVar(&showAudit, "audit", true, "print each unit's audit trail")
}

// newFactory builds a context per unit from the loaded configuration and
// registers the placeholder stages with signatures from the configured
// scheme.
func newFactory() batch.Factory {
	return func(_ context.Context, u batch.Unit) (*sinphase.Context, error) {
		opts, err := cfg.EngineOptions(logger.With(zap.String("unit", u.Name)))
		if err != nil {
			return nil, err
		}
		scheme, err := cfg.Scheme()
		if err != nil {
			return nil, err
		}

		pc, err := sinphase.New(cfg.Trust(), opts...)
		if err != nil {
			return nil, err
		}
		for _, id := range sinphase.Stages() {
			if err := pc.RegisterStage(id, placeholderStage(id), scheme.Sign(int(id))); err != nil {
				pc.Close()
				return nil, err
			}
		}
		return pc, nil
	}
}

func printReports(w io.Writer, reports []batch.Report, withAudit bool) {
	for _, rep := range reports {
		status := "ok"
		switch {
		case rep.Cancelled:
			status = "cancelled"
		case rep.Err != nil:
			status = "failed at " + rep.Step
		case rep.Certified:
			status = "certified"
		}
		fmt.Fprintf(w, "%s: %s\n", rep.Unit, status)
		if rep.Err != nil {
			fmt.Fprintf(w, "  error: %v\n", rep.Err)
		}
		if withAudit {
			for _, e := range rep.Audit {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}
}
