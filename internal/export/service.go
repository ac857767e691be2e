// Package export renders parsed receipts as XLSX workbooks.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/theairavi-del/splitt-app/internal/entity"
)

// Service produces XLSX bytes for parsed receipts.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReceiptXLSX returns an XLSX workbook (as bytes) for one parsed
// receipt: a header block, the item table, then the summary rows.
func (s *Service) ReceiptXLSX(rec entity.ParsedReceipt) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipt"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	row := 1
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Header block
	write(1, "Merchant")
	write(2, rec.Merchant)
	row++
	write(1, "Date")
	write(2, rec.Date)
	row++
	write(1, "Confidence")
	write(2, rec.Confidence)
	row += 2

	// Item table
	headers := []string{"Item", "Amount", "Quantity", "Confidence"}
	for i, h := range headers {
		write(i+1, h)
	}
	row++
	for _, it := range rec.Items {
		write(1, it.Name)
		write(2, it.Price)
		write(3, it.Quantity)
		write(4, it.Confidence)
		row++
	}
	row++

	// Summary rows
	for _, sr := range []struct {
		label  string
		amount float64
	}{
		{"Subtotal", rec.Subtotal},
		{"Tax", rec.Tax},
		{"Tip", rec.Tip},
		{"Total", rec.Total},
	} {
		write(1, sr.label)
		write(2, sr.amount)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // item names
	_ = f.SetColWidth(sheet, "B", "B", 14) // amounts
	_ = f.SetColWidth(sheet, "C", "D", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("receipt exported",
		"items", len(rec.Items), "bytes", buf.Len(),
		"elapsed", time.Since(start),
	)
	return buf.Bytes(), nil
}
