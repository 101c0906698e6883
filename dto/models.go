package dto

import "github.com/shopspring/decimal"

// Amount is an exact dollar value extracted from a premium statement.
// The zero value is a zero amount.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func ZeroAmount() Amount {
	return Amount{Decimal: decimal.Zero}
}

// Format renders the amount for output: ".00" for zero, otherwise a fixed
// two-decimal string with a leading minus sign for credits. Thousands
// separators and the CR suffix appear only in source text, never in output.
func (a Amount) Format() string {
	if a.IsZero() {
		return ".00"
	}
	return a.StringFixed(2)
}

// MarshalCSV implements the gocsv marshaler so CSV cells reuse Format.
func (a Amount) MarshalCSV() (string, error) {
	return a.Format(), nil
}

// PageAssignment pairs a 1-indexed statement page with the division it
// reports on.
type PageAssignment struct {
	PageNumber int
	Division   string
}

// DivisionSummary holds one page's extracted figures: the division label plus
// the first gross amount of each of the six transaction categories. Categories
// missing from the page default to zero.
type DivisionSummary struct {
	Division      string `json:"division" csv:"Company"`
	NewPolicies   Amount `json:"new_policies" csv:"New Policies"`
	Rewrites      Amount `json:"rewrites" csv:"Rewrites"`
	AddedPremium  Amount `json:"added_premium" csv:"Added Premium"`
	ReturnPremium Amount `json:"return_premium" csv:"Return Premium"`
	Renewals      Amount `json:"renewals" csv:"Renewals"`
	Cancellations Amount `json:"cancellations" csv:"Cancellations"`
}

// ExtractionResult is the outcome of walking one statement: summaries in
// configured page order plus page-level warnings for anything skipped.
type ExtractionResult struct {
	Summaries []DivisionSummary `json:"summaries"`
	Warnings  []string          `json:"warnings"`
}
