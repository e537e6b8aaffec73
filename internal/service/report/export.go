package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timebill-backend/internal/domain"
)

var csvHeader = []string{"client", "date", "activity_type", "description", "hours", "hourly_rate", "amount"}

// WriteCSV renders r as CSV: one row per line item, a subtotal row after
// each client and a grand total row. Money and hours are rounded to two
// decimals here and nowhere else; subtotals round the unrounded sums.
func WriteCSV(w io.Writer, r *domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range r.Clients {
		rate := money(c.Client.HourlyRate)
		for _, line := range c.Entries {
			row := []string{
				textCell(c.Client.Name),
				line.Date.Format(domain.DateLayout),
				textCell(line.ActivityType),
				textCell(line.Description),
				money(line.Hours),
				rate,
				money(line.Hours * c.Client.HourlyRate),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv line: %w", err)
			}
		}
		subtotal := []string{textCell(c.Client.Name), "", "", "Subtotal", money(c.TotalHours), rate, money(c.TotalValue)}
		if err := cw.Write(subtotal); err != nil {
			return fmt.Errorf("write csv subtotal: %w", err)
		}
	}

	total := []string{"TOTAL", "", "", "", money(r.Summary.TotalHours), "", money(r.Summary.TotalValue)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("write csv total: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the attachment name for a report over rng.
func ExportFilename(rng domain.DateRange) string {
	return fmt.Sprintf("report_%s_%s.csv", rng.Start.Format(domain.DateLayout), rng.End.Format(domain.DateLayout))
}

// textCell neutralises user text that a spreadsheet would otherwise
// evaluate as a formula.
func textCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
