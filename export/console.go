package export

import (
	"fmt"
	"io"

	"github.com/agencydesk/premium-extract/dto"
)

// PrintSummaries writes the human-readable report for each division.
func PrintSummaries(w io.Writer, summaries []dto.DivisionSummary) {
	for _, s := range summaries {
		fmt.Fprintf(w, "\n--- %s ---\n", s.Division)
		fmt.Fprintf(w, "New Policies: %s\n", s.NewPolicies.Format())
		fmt.Fprintf(w, "Rewrites: %s\n", s.Rewrites.Format())
		fmt.Fprintf(w, "Added Premium: %s\n", s.AddedPremium.Format())
		fmt.Fprintf(w, "Return Premium: %s\n", s.ReturnPremium.Format())
		fmt.Fprintf(w, "Renewals: %s\n", s.Renewals.Format())
		fmt.Fprintf(w, "Cancellations: %s\n", s.Cancellations.Format())
	}
}
