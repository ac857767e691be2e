// Package parser recovers structured receipt data from raw OCR text.
//
// The pipeline is a single pass over the input lines: preprocess,
// classify each line against an ordered rule set, fold summary lines,
// scan for metadata, then score the extraction. It never fails; missing
// structure degrades the confidence score instead of raising errors.
package parser

import (
	"log/slog"

	"github.com/theairavi-del/splitt-app/constants"
	"github.com/theairavi-del/splitt-app/internal/entity"
)

// Config holds thresholds and behavior flags for parsing.
type Config struct {
	MerchantScanLines int // default 5
}

// Parser holds the compiled pattern set. It is read-only after New and
// safe for concurrent use.
type Parser struct {
	logger *slog.Logger
	cfg    Config
	rules  []rule
}

func New(cfg Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MerchantScanLines <= 0 {
		cfg.MerchantScanLines = constants.MerchantScanLines
	}
	return &Parser{logger: logger, cfg: cfg, rules: buildRules()}
}

// Parse structures raw receipt text into a ParsedReceipt. Empty or
// unusable input yields an empty receipt with confidence 0.
func (p *Parser) Parse(raw string) entity.ParsedReceipt {
	lines := SplitLines(raw)
	if len(lines) == 0 {
		return entity.ParsedReceipt{Items: []entity.Item{}}
	}

	items := make([]entity.Item, 0, len(lines))
	classified := make([]entity.ClassifiedLine, 0, len(lines))
	for _, ln := range FilterBoilerplate(lines) {
		cl := p.Classify(ln)
		if cl.Kind == entity.LineUnknown {
			continue
		}
		classified = append(classified, cl)
		if cl.Kind == entity.LineItem && cl.Item != nil {
			items = append(items, *cl.Item)
		}
	}

	summary := AggregateSummary(classified)
	// Metadata runs over the unfiltered lines: merchant names often sit
	// in exactly the header lines the skip-list removes.
	meta := p.extractMetadata(lines)
	confidence := CalculateConfidence(items, summary)

	p.logger.Debug("receipt parsed",
		"lines", len(lines), "items", len(items),
		"merchant", meta.Merchant, "total", summary.Total,
		"confidence", confidence,
	)

	return entity.ParsedReceipt{
		Merchant:   meta.Merchant,
		Date:       meta.Date,
		Items:      items,
		Tax:        summary.Tax,
		Tip:        summary.Tip,
		Total:      summary.Total,
		Subtotal:   summary.Subtotal,
		Confidence: confidence,
	}
}

// Classify matches one line against the rule set, first match wins.
// Lines matching no rule are Unknown; that is not an error.
func (p *Parser) Classify(line string) entity.ClassifiedLine {
	for _, r := range p.rules {
		if cl, ok := r.tryMatch(line); ok {
			return cl
		}
	}
	return entity.ClassifiedLine{Kind: entity.LineUnknown}
}
