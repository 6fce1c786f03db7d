// Package export renders the reconciled day records as a downloadable
// delimited text artifact.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/dashboard"
)

var header = []string{"data", "giorno", "tipo", "ore_totali", "ore_ordinarie", "ore_straordinario"}

// CSV writes one row per reconciled day, semicolon-delimited as the
// dashboard's spreadsheet users expect. Hours are emitted with the
// source's 2-decimal precision, never re-rounded.
func CSV(days []shift.Day) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, day := range days {
		row := []string{
			day.Date,
			dashboard.WeekdayName(day.Date),
			string(day.PrimaryKind()),
			formatHours(day.TotalHours),
			formatHours(day.OrdinaryHours),
			formatHours(day.OvertimeHours),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write export row for %s: %w", day.Date, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}
	return buf.Bytes(), nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
