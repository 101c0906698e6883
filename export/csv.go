package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/agencydesk/premium-extract/dto"
)

// WriteCSV renders the summaries as CSV: the fixed header row, then one row
// per division in extraction order. Amount cells carry the ".00" zero form
// and a leading minus sign for credits.
func WriteCSV(summaries []dto.DivisionSummary, w io.Writer) error {
	if err := gocsv.Marshal(&summaries, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV rendering to path, creating parent directories
// as needed.
func WriteCSVFile(summaries []dto.DivisionSummary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return WriteCSV(summaries, f)
}
