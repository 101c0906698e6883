package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/premium-extract/dto"
)

// TransactionCategories are the six category labels a statement page reports,
// in output column order. Matching is exact and case-sensitive.
var TransactionCategories = []string{
	"NEW POLICIES",
	"REWRITES",
	"ADDED PREMIUM",
	"RETURN PREMIUM",
	"RENEWALS",
	"CANCELLATIONS",
}

// Amounts print as digits with comma separators, two decimals and an optional
// CR suffix for credits, or as the bare zero form ".00".
const amountPattern = `[\d,]+\.\d{2}(?:CR)?|\.00`

// A category line starts with the label followed by the gross, commission and
// net columns of the direct billed section, e.g.:
// NEW POLICIES 21,149.00 3,172.35 17,976.65 .00 .00 .00
var linePattern = regexp.MustCompile(
	`(?m)^(` + strings.Join(TransactionCategories, "|") + `)\s+(` + amountPattern + `)`,
)

// ParseAmount converts an amount token into an Amount. It never fails:
// malformed tokens become zero by contract, not by accident.
func ParseAmount(token string) dto.Amount {
	token = strings.TrimSpace(token)
	if token == ".00" {
		return dto.ZeroAmount()
	}

	isCredit := strings.HasSuffix(token, "CR")
	if isCredit {
		token = strings.TrimSuffix(token, "CR")
	}
	token = strings.ReplaceAll(token, ",", "")

	d, err := decimal.NewFromString(token)
	if err != nil {
		return dto.ZeroAmount()
	}
	if isCredit {
		d = d.Neg()
	}
	return dto.NewAmount(d)
}

// MatchCategoryLines scans page text for category lines and returns the first
// gross amount seen per label. Later repeats of a label (the agency billed
// section restates the same categories) are ignored.
func MatchCategoryLines(text string) map[string]dto.Amount {
	values := make(map[string]dto.Amount)
	for _, m := range linePattern.FindAllStringSubmatch(text, -1) {
		label, gross := m[1], m[2]
		if _, seen := values[label]; !seen {
			values[label] = ParseAmount(gross)
		}
	}
	return values
}

// ParsePremiumPage extracts one division's figures from a page's text.
// Returns nil when the page has no text or no recognizable category line.
// A page that matched at least one line still yields a summary even if every
// matched amount is zero; the unmatched categories default to zero.
func ParsePremiumPage(text, division string) *dto.DivisionSummary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	values := MatchCategoryLines(text)
	if len(values) == 0 {
		return nil
	}

	return &dto.DivisionSummary{
		Division:      division,
		NewPolicies:   values["NEW POLICIES"],
		Rewrites:      values["REWRITES"],
		AddedPremium:  values["ADDED PREMIUM"],
		ReturnPremium: values["RETURN PREMIUM"],
		Renewals:      values["RENEWALS"],
		Cancellations: values["CANCELLATIONS"],
	}
}
