package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/openkraft/ciusage/internal/domain"
)

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

// Writer implements domain.ReportWriter with a single-sheet workbook.
type Writer struct {
	sheet string
}

// New creates a Writer that names its only sheet sheet.
func New(sheet string) *Writer {
	if sheet == "" {
		sheet = domain.DefaultSheetName
	}
	return &Writer{sheet: sheet}
}

// Write saves report to path, replacing any existing file.
func (w *Writer) Write(path string, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := report.Values()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(w.sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if len(rows) > 1 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
		if err != nil {
			return fmt.Errorf("creating number style: %w", err)
		}
		last := fmt.Sprintf("C%d", len(rows))
		if err := f.SetCellStyle(w.sheet, "C2", last, style); err != nil {
			return fmt.Errorf("styling usage column: %w", err)
		}
	}

	if err := f.SetColWidth(w.sheet, "A", "B", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(w.sheet, "C", "C", 20); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
