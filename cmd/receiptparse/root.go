package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theairavi-del/splitt-app/internal/common"
)

var cfg *common.Config

var rootCmd = &cobra.Command{
	Use:   "receiptparse",
	Short: "Structure raw OCR receipt text into items, totals and metadata",
	Long: `receiptparse reads noisy OCR-extracted receipt text and recovers a
structured record: line items with prices and quantities, summary
totals, merchant and date, plus a confidence score for the extraction.`,
	SilenceUsage: true,
}

// Execute runs the CLI with the loaded configuration.
func Execute(c *common.Config) {
	cfg = c
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(exportCmd)
}

// readInput returns the receipt text from the file argument, or stdin
// when no argument was given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}
