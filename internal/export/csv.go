package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"

	"polititrack/internal/domain"
)

// healthRow flattens one report entry; csvutil maps the csv tags to
// header columns.
type healthRow struct {
	ID           int64  `csv:"id"`
	FullName     string `csv:"full_name"`
	Jurisdiction string `csv:"jurisdiction"`
	Issues       string `csv:"issues"`
}

// WriteHealthReportCSV renders the data-health report as CSV. Each
// politician's issues are joined into one cell as "field: message"
// pairs separated by semicolons.
func WriteHealthReportCSV(w io.Writer, report []domain.PoliticianDataHealth) error {
	rows := make([]healthRow, len(report))
	for i, r := range report {
		parts := make([]string, len(r.Issues))
		for j, issue := range r.Issues {
			parts[j] = issue.Field + ": " + issue.Message
		}
		rows[i] = healthRow{
			ID:           r.ID,
			FullName:     r.FullName,
			Jurisdiction: r.Jurisdiction,
			Issues:       strings.Join(parts, "; "),
		}
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal health report: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write health report: %w", err)
	}
	return nil
}
