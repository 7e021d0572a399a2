package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/ppm"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a PPM header and validate its pixel data",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Bool("header-only", false, "Only parse the header")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	headerOnly, _ := cmd.Flags().GetBool("header-only")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	h, err := ppm.ReadHeader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", h.Magic)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", h.Width, h.Height)
	fmt.Fprintf(out, "Max value:  %d\n", h.MaxValue)
	fmt.Fprintf(out, "File size:  %d bytes\n", st.Size())

	if headerOnly {
		return nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	img, err := ppm.Decode(f)
	if err != nil {
		fmt.Fprintf(out, "Pixels:     invalid: %v\n", err)
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	fmt.Fprintf(out, "Pixels:     %d\n", img.Len())
	return nil
}
