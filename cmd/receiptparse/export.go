package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theairavi-del/splitt-app/internal/common"
	"github.com/theairavi-del/splitt-app/internal/export"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Parse receipt text and write an XLSX workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "receipt.xlsx", "output XLSX file path")
	exportCmd.Flags().BoolVar(&flagMerge, "merge", false, "merge near-duplicate items before export")
	exportCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "similarity threshold for --merge (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	rec, err := parseReceipt(args)
	if err != nil {
		return err
	}

	svc := export.NewService(slog.Default())
	b, err := svc.ReceiptXLSX(rec)
	if err != nil {
		return common.WrapError(err, "build workbook")
	}
	if err := os.WriteFile(flagOut, b, 0o644); err != nil {
		return common.WrapError(err, "write "+flagOut)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d items)\n", flagOut, len(rec.Items))
	return nil
}
