package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/color"
	"github.com/SAI-Aghylas/libppm/internal/logger"
	"github.com/SAI-Aghylas/libppm/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Apply operations to a PPM image and save the result",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input P3 file")
	convertCmd.Flags().StringP("output", "o", "", "Output P3 file")
	convertCmd.Flags().StringSlice("op", nil, "Operation to apply, repeatable ("+color.OpNames()+")")
	convertCmd.Flags().Int("workers", 0, "Transform workers (0 = number of CPUs)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	convertCmd.MarkFlagRequired("op")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	opNames, _ := cmd.Flags().GetStringSlice("op")
	workers, _ := cmd.Flags().GetInt("workers")

	ops, err := color.ParseOps(opNames)
	if err != nil {
		return err
	}

	log := logger.L().With("input", inputPath, "output", outputPath)
	log.Debug("convert.start", "ops", ops, "workers", workers)

	result, err := pipeline.RunFile(inputPath, outputPath, pipeline.Options{Ops: ops, Workers: workers})
	if err != nil {
		log.Error("convert.failed", "err", err)
		return fmt.Errorf("conversion: %w", err)
	}
	log.Info("convert.done", "width", result.Width, "height", result.Height, "pixels", result.Pixels)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Converted %dx%d image (%s)\n", result.Width, result.Height, joinOps(ops))
	fmt.Fprintf(out, "Input:  %s\n", inputPath)
	fmt.Fprintf(out, "Output: %s (%d pixels)\n", outputPath, result.Pixels)
	return nil
}

func joinOps(ops []color.Op) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	return strings.Join(names, " → ")
}
