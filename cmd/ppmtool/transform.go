package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/logger"
	"github.com/SAI-Aghylas/libppm/internal/ppm"
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Write inverted and grayscaled copies of a PPM image",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringP("out-dir", "d", "", "Output directory (default: next to the input)")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	}
	out := cmd.OutOrStdout()
	log := logger.L().With("input", inputPath)

	fmt.Fprintf(out, "Reading the image: %s\n", inputPath)
	image, err := ppm.DecodeFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	log.Debug("transform.loaded", "width", image.Width, "height", image.Height)

	inverted := image.Invert()
	fmt.Fprintln(out, "Invert successful.")
	grayscaled := image.Grayscale()
	fmt.Fprintln(out, "Grayscale successful.")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	name := filepath.Base(inputPath)
	invertedPath := filepath.Join(outDir, "inverted_"+name)
	grayscaledPath := filepath.Join(outDir, "grayscaled_"+name)

	if _, err := ppm.EncodeFile(invertedPath, inverted); err != nil {
		return fmt.Errorf("writing inverted image: %w", err)
	}
	fmt.Fprintf(out, "Inverted image saved into: %s\n", invertedPath)

	if _, err := ppm.EncodeFile(grayscaledPath, grayscaled); err != nil {
		return fmt.Errorf("writing grayscaled image: %w", err)
	}
	fmt.Fprintf(out, "Grayscaled image saved into: %s\n", grayscaledPath)

	log.Info("transform.done", "inverted", invertedPath, "grayscaled", grayscaledPath)
	return nil
}
