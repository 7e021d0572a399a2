package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/logger"
	"github.com/SAI-Aghylas/libppm/internal/manifest"
	"github.com/SAI-Aghylas/libppm/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [manifest.yaml]",
	Short: "Run every convert job listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("workers", -1, "Override the manifest's concurrent job limit (0 = number of CPUs)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers >= 0 {
		m.Workers = workers
	}

	log := logger.L().With("manifest", m.Path)
	log.Debug("batch.start", "jobs", len(m.Jobs), "workers", m.Workers)

	results, err := pipeline.RunBatch(cmd.Context(), m)
	if err != nil {
		log.Error("batch.failed", "err", err)
		return fmt.Errorf("batch: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%s: %s → %s (%dx%d, %s)\n",
			r.Job.Name, r.Job.Input, r.Job.Output, r.Result.Width, r.Result.Height, joinOps(r.Job.Ops))
	}
	log.Info("batch.done", "jobs", len(results))
	return nil
}
