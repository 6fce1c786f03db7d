package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSV_OneRowPerDay(t *testing.T) {
	days := []shift.Day{
		{
			Date:          "2025-03-03",
			TotalHours:    8.25,
			OrdinaryHours: 6,
			OvertimeHours: 2.25,
			Shifts: []shift.Shift{
				{Kind: shift.KindPresence, Status: shift.StatusActive},
			},
		},
		{
			Date: "2025-03-02",
			Shifts: []shift.Shift{
				{Kind: shift.KindAbsence, Status: shift.StatusActive},
			},
		},
	}

	raw, err := CSV(days)
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"data", "giorno", "tipo", "ore_totali", "ore_ordinarie", "ore_straordinario"}, rows[0])
	assert.Equal(t, []string{"2025-03-03", "lunedì", "PRESENZA", "8.25", "6", "2.25"}, rows[1])
	assert.Equal(t, []string{"2025-03-02", "domenica", "ASSENZA", "0", "0", "0"}, rows[2])
}

// Hours must survive the round trip exactly at the 2-decimal storage
// precision, with no drift from re-rounding.
func TestCSV_HoursExact(t *testing.T) {
	days := []shift.Day{
		{Date: "2025-01-01", TotalHours: 7.33, OrdinaryHours: 6, OvertimeHours: 1.33},
	}
	raw, err := CSV(days)
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	assert.Equal(t, "7.33", rows[1][3])
	assert.Equal(t, "1.33", rows[1][5])
}

func TestCSV_MalformedDateGetsPlaceholderWeekday(t *testing.T) {
	days := []shift.Day{{Date: "non-una-data"}}
	raw, err := CSV(days)
	require.NoError(t, err)

	rows := parseCSV(t, raw)
	assert.Equal(t, "N/D", rows[1][1])
}

func TestCSV_EmptyInput(t *testing.T) {
	raw, err := CSV(nil)
	require.NoError(t, err)
	rows := parseCSV(t, raw)
	assert.Len(t, rows, 1)
}
