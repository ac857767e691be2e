package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theairavi-del/splitt-app/internal/common"
	"github.com/theairavi-del/splitt-app/internal/entity"
	"github.com/theairavi-del/splitt-app/internal/fuzzy"
	"github.com/theairavi-del/splitt-app/internal/parser"
	"github.com/theairavi-del/splitt-app/internal/validate"
)

var (
	flagMerge     bool
	flagThreshold float64
	flagPretty    bool
)

// envelope wraps a parsed receipt for downstream consumers (the split
// engine keys sessions on the receipt id).
type envelope struct {
	ReceiptID uuid.UUID            `json:"receipt_id"`
	ParsedAt  string               `json:"parsed_at"`
	Receipt   entity.ParsedReceipt `json:"receipt"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse receipt text into structured JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&flagMerge, "merge", false, "merge near-duplicate items before output")
	parseCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "similarity threshold for --merge (default from config)")
	parseCmd.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	rec, err := parseReceipt(args)
	if err != nil {
		return err
	}

	out := envelope{
		ReceiptID: uuid.New(),
		ParsedAt:  time.Now().UTC().Format(time.RFC3339),
		Receipt:   rec,
	}
	var b []byte
	if flagPretty {
		b, err = json.MarshalIndent(out, "", "  ")
	} else {
		b, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func parseReceipt(args []string) (entity.ParsedReceipt, error) {
	text, err := readInput(args)
	if err != nil {
		return entity.ParsedReceipt{}, err
	}

	p := parser.New(parser.Config{MerchantScanLines: cfg.Parser.MerchantScanLines}, slog.Default())
	rec := p.Parse(text)

	if flagMerge {
		threshold := flagThreshold
		if threshold == 0 {
			threshold = cfg.Fuzzy.SimilarityThreshold
		}
		rec.Items = fuzzy.MergeSimilarItems(rec.Items, threshold)
		// a merge changes the item set; keep the score honest
		rec.Confidence = parser.CalculateConfidence(rec.Items, entity.Summary{
			Tax: rec.Tax, Tip: rec.Tip, Total: rec.Total, Subtotal: rec.Subtotal,
		})
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return entity.ParsedReceipt{}, fmt.Errorf("encode receipt: %w", err)
	}
	if err := validate.ReceiptJSON(body); err != nil {
		return entity.ParsedReceipt{}, common.NewAppError("SCHEMA_ERROR", "parsed receipt failed schema validation", err)
	}
	return rec, nil
}
