package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAI-Aghylas/libppm/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:                "ppmtool",
	Short:              "Invert and grayscale plain-text PPM (P3) images",
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// logCleanup restores the discarding logger once a command finishes.
var logCleanup func()

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	format, _ := cmd.Flags().GetString("log-format")

	cleanup, err := logger.Setup(logger.Config{
		Debug:  debug,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logCleanup = cleanup
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
