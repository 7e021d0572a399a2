package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/ir"
	"github.com/SAI-Aghylas/libppm/internal/ppm"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw interleaved RGB bytes to a P3 file",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGB file")
	encodeCmd.Flags().StringP("output", "o", "", "Output P3 file")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, err := ir.FromRGB(raw, width, height)
	if err != nil {
		return err
	}

	n, err := ppm.EncodeFile(outputPath, img)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %dx%d RGB → %s (%d pixels)\n", width, height, outputPath, n)
	return nil
}
