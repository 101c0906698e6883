package service

import (
	"fmt"

	"github.com/agencydesk/premium-extract/dto"
	"github.com/agencydesk/premium-extract/utils"
)

// DivisionPages maps statement pages (1-indexed) to the divisions they report
// on, in output order. Pages 6, 9 and 12 are always zero-valued and skipped.
var DivisionPages = []dto.PageAssignment{
	{PageNumber: 4, Division: "Insurance Division 4"},
	{PageNumber: 5, Division: "Insurance Division 5"},
	{PageNumber: 7, Division: "Insurance Division 7"},
	{PageNumber: 8, Division: "Insurance Division 8"},
	{PageNumber: 10, Division: "Insurance Division 10"},
	{PageNumber: 11, Division: "Insurance Division 11"},
}

type ExtractService struct {
	pdfProcessor PDFProcessor
}

func NewExtractService(pdfProcessor PDFProcessor) *ExtractService {
	return &ExtractService{pdfProcessor: pdfProcessor}
}

// ExtractStatement walks the configured pages of a statement and collects one
// summary per division page that held recognizable data. Pages that are
// missing or unreadable surface as warnings on the result, not as errors;
// only a document that cannot be opened at all fails.
func (s *ExtractService) ExtractStatement(pdfData []byte) (*dto.ExtractionResult, error) {
	pageCount, err := s.pdfProcessor.PageCount(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	result := &dto.ExtractionResult{
		Summaries: []dto.DivisionSummary{},
		Warnings:  []string{},
	}

	for _, assignment := range DivisionPages {
		if assignment.PageNumber > pageCount {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("page %d not in document", assignment.PageNumber))
			continue
		}

		text, err := s.pdfProcessor.PageText(pdfData, assignment.PageNumber)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not read page %d: %v", assignment.PageNumber, err))
			continue
		}

		summary := utils.ParsePremiumPage(text, assignment.Division)
		if summary == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not extract data from page %d", assignment.PageNumber))
			continue
		}

		result.Summaries = append(result.Summaries, *summary)
	}

	return result, nil
}
