package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/agencydesk/premium-extract/dto"
)

const sheetName = "Premium Transactions"

var columnHeaders = []string{
	"Company",
	"New Policies",
	"Rewrites",
	"Added Premium",
	"Return Premium",
	"Renewals",
	"Cancellations",
}

// BuildXLSX renders the summaries as an XLSX workbook (as bytes), one header
// row then one row per division. Amount cells use the same formatting rule as
// the CSV rendering.
func BuildXLSX(summaries []dto.DivisionSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, s := range summaries {
		cells := []string{
			s.Division,
			s.NewPolicies.Format(),
			s.Rewrites.Format(),
			s.AddedPremium.Format(),
			s.ReturnPremium.Format(),
			s.Renewals.Format(),
			s.Cancellations.Format(),
		}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteXLSXFile writes the XLSX rendering to path, creating parent
// directories as needed.
func WriteXLSXFile(summaries []dto.DivisionSummary, path string) error {
	workbook, err := BuildXLSX(summaries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, workbook, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
